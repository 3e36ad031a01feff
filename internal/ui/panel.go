package ui

import "skyfeed/internal/compose"

// BoundsFunc returns the panel's rect given the whole screen.
type BoundsFunc func(screen compose.Rect) compose.Rect

// Panel is a named region of the screen and what is drawn into it.
type Panel struct {
	ID       string
	Renderer compose.Renderer
	Bounds   BoundsFunc
}

// Render draws the panel into its bounds on screen.
func (p Panel) Render(screen compose.Rect, buf *compose.Buffer) {
	if p.Renderer == nil {
		return
	}
	area := p.Bounds(screen)
	if area.Empty() {
		return
	}
	p.Renderer.Render(area, buf)
}
