// Package widgets holds the feed client's widgets. They are built from
// compose primitives and stored into a compose.Store each frame.
package widgets

import (
	"github.com/charmbracelet/x/ansi"

	"skyfeed/internal/compose"
)

var (
	accentStyle    = compose.NewStyle().Foreground(ansi.Blue)
	dimStyle       = compose.NewStyle().Dim(true)
	accentDimStyle = accentStyle.Patch(dimStyle)
	boldStyle      = compose.NewStyle().Bold(true)
	handleStyle    = dimStyle.Patch(compose.NewStyle().Italic(true))
	markerStyle    = compose.NewStyle().Foreground(ansi.Magenta)
)
