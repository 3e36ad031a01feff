package ui

import "skyfeed/internal/compose"

// Direction is the axis Split divides along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindFill
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	kind constraintKind
	n    int
}

// Length is a fixed number of cells.
func Length(n int) Constraint { return Constraint{kindLength, max(n, 0)} }

// Percentage is a share of the space left after spacing.
func Percentage(n int) Constraint { return Constraint{kindPercentage, min(max(n, 0), 100)} }

// Fill takes what remains after fixed segments, shared by weight.
func Fill(weight int) Constraint { return Constraint{kindFill, max(weight, 0)} }

// Margin shrinks area by n cells on every side.
func Margin(area compose.Rect, n int) compose.Rect {
	return compose.NewRect(area.X+n, area.Y+n, area.Width-2*n, area.Height-2*n)
}

// Split divides area along dir into one rect per constraint with spacing
// cells between neighbours. Fixed segments are served first, in order, and
// shrink when space runs out; fill segments share the rest.
func Split(area compose.Rect, dir Direction, spacing int, cs ...Constraint) []compose.Rect {
	if len(cs) == 0 {
		return nil
	}
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}
	avail := max(total-spacing*(len(cs)-1), 0)

	sizes := make([]int, len(cs))
	left, weights := avail, 0
	for i, c := range cs {
		switch c.kind {
		case kindLength:
			sizes[i] = min(c.n, left)
		case kindPercentage:
			sizes[i] = min(avail*c.n/100, left)
		case kindFill:
			weights += c.n
			continue
		}
		left -= sizes[i]
	}
	if weights > 0 {
		rest, last := left, -1
		for i, c := range cs {
			if c.kind != kindFill || c.n == 0 {
				continue
			}
			sizes[i] = rest * c.n / weights
			left -= sizes[i]
			last = i
		}
		if last >= 0 {
			sizes[last] += left
		}
	}

	out := make([]compose.Rect, len(cs))
	pos := area.X
	if dir == Vertical {
		pos = area.Y
	}
	for i, size := range sizes {
		if dir == Vertical {
			out[i] = area.WithY(pos).WithHeight(size)
		} else {
			out[i] = area.WithX(pos).WithWidth(size)
		}
		pos += size + spacing
	}
	return out
}
