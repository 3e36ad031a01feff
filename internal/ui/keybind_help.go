package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"skyfeed/internal/textutil"
)

// RenderKeybindHelp produces the one-line footer: the bindings of mode on the
// left and status (the signed-in handle) on the right, exactly width columns
// wide.
func RenderKeybindHelp(reg *KeybindRegistry, mode AppMode, status string, width int) string {
	if width <= 0 {
		return ""
	}
	right := ""
	if status != "" {
		right = Styles.Muted.Render(textutil.Truncate(status, width/3))
	}
	rw := lipgloss.Width(right)

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.HelpDesc
	helpModel.Styles.ShortSeparator = Styles.HelpDesc
	helpModel.Styles.Ellipsis = Styles.HelpDesc
	helpModel.Width = max(width-rw-1, 0)
	left := ""
	if reg != nil && helpModel.Width > 0 {
		left = helpModel.View(NewKeyMap(reg, mode))
	}

	gap := max(width-lipgloss.Width(left)-rw, 0)
	return left + strings.Repeat(" ", gap) + right
}
