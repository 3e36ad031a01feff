package compose

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// Style is the visual treatment of a run of cells. The zero value is the
// terminal default. Methods return modified copies.
type Style struct {
	fg, bg    ansi.Color
	bold      bool
	dim       bool
	italic    bool
	underline bool
}

// NewStyle returns the default style.
func NewStyle() Style { return Style{} }

func (s Style) Foreground(c ansi.Color) Style { s.fg = c; return s }
func (s Style) Background(c ansi.Color) Style { s.bg = c; return s }
func (s Style) Bold(v bool) Style { s.bold = v; return s }
func (s Style) Dim(v bool) Style { s.dim = v; return s }
func (s Style) Italic(v bool) Style { s.italic = v; return s }
func (s Style) Underline(v bool) Style { s.underline = v; return s }

// Patch layers o on top of s: set colors in o replace those in s and
// attributes accumulate.
func (s Style) Patch(o Style) Style {
	if o.fg != nil {
		s.fg = o.fg
	}
	if o.bg != nil {
		s.bg = o.bg
	}
	s.bold = s.bold || o.bold
	s.dim = s.dim || o.dim
	s.italic = s.italic || o.italic
	s.underline = s.underline || o.underline
	return s
}

func (s Style) cellStyle() cellbuf.Style {
	var cs cellbuf.Style
	cs.Foreground(s.fg).
		Background(s.bg).
		Bold(s.bold).
		Faint(s.dim).
		Italic(s.italic).
		Underline(s.underline)
	return cs
}
