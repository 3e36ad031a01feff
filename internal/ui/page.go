package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"skyfeed/internal/compose"
)

// Page is one screen of the app. It follows Bubble Tea's Init/Update cycle but
// draws into a compose buffer instead of returning a string, so the app can
// place it next to the tab bar.
type Page interface {
	compose.Renderer

	Init() tea.Cmd
	// Update receives key events, FrameMsg once per frame, and the app's
	// page-level messages such as ScrollMsg.
	Update(tea.Msg) (Page, tea.Cmd)
	// CapturesInput reports whether a text input has focus, in which case
	// global key bindings are not applied.
	CapturesInput() bool
}
