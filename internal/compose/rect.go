// Package compose is a retained-mode compositor for terminal widgets.
//
// Widgets of unknown height are stored into a virtual content surface that
// may be taller than the screen, then scrolled and clipped into the physical
// cell buffer in one pass. Text reflows its spans with greedy word wrapping,
// and bordered boxes can shrink their borders to hug whatever their content
// actually occupied.
package compose

import (
	"fmt"

	"github.com/charmbracelet/x/cellbuf"
)

// MaxCoord is the largest coordinate or extent a Rect can carry. Arithmetic
// that would overflow it saturates instead.
const MaxCoord = 1<<31 - 1

// Rect is an axis-aligned rectangle in cell coordinates. Fields are never
// negative; use NewRect to build one from untrusted values.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a Rect with every component clamped into [0, MaxCoord].
func NewRect(x, y, width, height int) Rect {
	return Rect{X: clamp(x), Y: clamp(y), Width: clamp(width), Height: clamp(height)}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}

// satAdd adds two non-negative coordinates, saturating at MaxCoord.
func satAdd(a, b int) int {
	return clamp(a + b)
}

// satSub subtracts b from a, saturating at zero.
func satSub(a, b int) int {
	return clamp(a - b)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Area is the number of cells covered.
func (r Rect) Area() int { return r.Width * r.Height }

func (r Rect) Left() int { return r.X }
func (r Rect) Top() int { return r.Y }
func (r Rect) Right() int { return satAdd(r.X, r.Width) }
func (r Rect) Bottom() int { return satAdd(r.Y, r.Height) }

// WithX returns a copy of r moved to column x.
func (r Rect) WithX(x int) Rect { r.X = clamp(x); return r }

// WithY returns a copy of r moved to row y.
func (r Rect) WithY(y int) Rect { r.Y = clamp(y); return r }

// WithWidth returns a copy of r with the given width.
func (r Rect) WithWidth(w int) Rect { r.Width = clamp(w); return r }

// WithHeight returns a copy of r with the given height.
func (r Rect) WithHeight(h int) Rect { r.Height = clamp(h); return r }

// Union is the smallest rect containing both r and o. An empty operand
// contributes nothing, so the union with an empty rect is the other rect.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersection is the overlap of r and o, or the zero Rect when they are
// disjoint.
func (r Rect) Intersection(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).Empty()
}

// Contains reports whether o lies entirely inside r. Empty rects are
// contained by anything.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) rectangle() cellbuf.Rectangle {
	return cellbuf.Rect(r.X, r.Y, r.Width, r.Height)
}
