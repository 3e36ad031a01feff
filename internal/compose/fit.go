package compose

// Box lays content out inside a Block and draws the block around it. Edges
// marked with a Fit option hug what the content actually occupied instead
// of the offered area. Nothing is stored, border included, when the content
// stores nothing.
type Box struct {
	block   Block
	content func(inner Rect, s *Store)
	fit     fitEdges
}

type fitEdges struct {
	top, bottom, left, right bool
}

func (b Box) FitTop() Box { b.fit.top = true; return b }
func (b Box) FitBottom() Box { b.fit.bottom = true; return b }
func (b Box) FitLeft() Box { b.fit.left = true; return b }
func (b Box) FitRight() Box { b.fit.right = true; return b }
func (b Box) FitVertical() Box { return b.FitTop().FitBottom() }
func (b Box) FitHorizontal() Box { return b.FitLeft().FitRight() }
func (b Box) FitAll() Box { return b.FitVertical().FitHorizontal() }

// Store lays the content out in a nested store at the block's inner area,
// moves its placements into s, then places the block at the fitted rect.
func (b Box) Store(area Rect, s *Store) {
	inner := b.block.Inner(area)
	nested := NewStore()
	if b.content != nil {
		b.content(inner, nested)
	}
	content := nested.StoredArea()
	if content.Empty() {
		return
	}
	s.Extend(nested)
	s.Place(b.fit.calc(area, inner, content), b.block)
}

// calc grows target by the border and padding thickness on each fitted
// edge; unfitted edges stay where area puts them.
func (f fitEdges) calc(area, inner, target Rect) Rect {
	left, top, right, bottom := area.Left(), area.Top(), area.Right(), area.Bottom()
	if f.left {
		left = satSub(target.Left(), satSub(inner.Left(), area.Left()))
	}
	if f.top {
		top = satSub(target.Top(), satSub(inner.Top(), area.Top()))
	}
	if f.right {
		right = satAdd(target.Right(), satSub(area.Right(), inner.Right()))
	}
	if f.bottom {
		bottom = satAdd(target.Bottom(), satSub(area.Bottom(), inner.Bottom()))
	}
	return Rect{X: left, Y: top, Width: satSub(right, left), Height: satSub(bottom, top)}
}
