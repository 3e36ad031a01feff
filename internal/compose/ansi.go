package compose

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// ANSI is pre-rendered text carrying its own escape sequences, such as the
// output of a lipgloss style or a bubbles component View.
type ANSI string

// Size is the number of columns and rows the text occupies.
func (a ANSI) Size() (width, height int) {
	if a == "" {
		return 0, 0
	}
	lines := strings.Split(string(a), "\n")
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return width, len(lines)
}

// Render prints the text into area, clipping whatever does not fit.
func (a ANSI) Render(area Rect, buf *Buffer) {
	if area.Empty() {
		return
	}
	cellbuf.SetContentRect(buf, string(a), area.rectangle())
}

// Store places the text at the top-left of area, sized to its content.
func (a ANSI) Store(area Rect, s *Store) {
	w, h := a.Size()
	s.Place(Rect{X: area.X, Y: area.Y, Width: min(w, area.Width), Height: min(h, area.Height)}, a)
}
