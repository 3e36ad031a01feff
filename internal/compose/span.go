package compose

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Span is a run of text sharing one style.
type Span struct {
	Content string
	Style   Style
}

// Raw is an unstyled span.
func Raw(s string) Span { return Span{Content: s} }

// Styled is a span with the given style.
func Styled(s string, style Style) Span { return Span{Content: s, Style: style} }

// Width is the number of columns the span occupies.
func (s Span) Width() int { return uniseg.StringWidth(s.Content) }

// Render draws the span on the first row of area, clipped to its width.
func (s Span) Render(area Rect, buf *Buffer) {
	if area.Empty() {
		return
	}
	buf.SetStringN(area.X, area.Y, s.Content, area.Width, s.Style)
}

// Line is a single row of spans.
type Line []Span

// Width is the total width of every span.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += s.Width()
	}
	return w
}

// String is the unstyled content of the line.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Content)
	}
	return sb.String()
}

// Render draws the spans left to right on the first row of area.
func (l Line) Render(area Rect, buf *Buffer) {
	if area.Empty() {
		return
	}
	x, right := area.X, area.Right()
	for _, s := range l {
		if x >= right {
			return
		}
		x += buf.SetStringN(x, area.Y, s.Content, right-x, s.Style)
	}
}
