package widgets

import "skyfeed/internal/compose"

// scroller is a vertically scrolled stack of boxes that remembers how much
// of the viewport it left blank on the last render.
type scroller struct {
	scroll   int
	blank    int
	hasBlank bool

	// Set on each render: how many items were stored, whether that was all
	// of them, and how tall they were together.
	items    int
	complete bool
	content  int
	height   int
}

// Scroll returns the current offset in rows.
func (l *scroller) Scroll() int { return l.scroll }

// ScrollBy moves the view down by n rows (up when n is negative), never
// above the first row.
func (l *scroller) ScrollBy(n int) { l.scroll = max(l.scroll+n, 0) }

// ScrollTop jumps back to the first row.
func (l *scroller) ScrollTop() { l.scroll = 0 }

// clampToEnd stops the view from scrolling further than the bottom of the
// last item once the previous render stored all n items. Otherwise the end
// is not known yet and the offset is left alone.
func (l *scroller) clampToEnd(n int) {
	if !l.complete || l.items != n {
		return
	}
	l.scroll = min(l.scroll, max(l.content-l.height, 0))
}

// Blank reports the number of rows below the last item on the last render,
// and whether the items ended inside the viewport at all.
func (l *scroller) Blank() (int, bool) { return l.blank, l.hasBlank }

// render stores boxes top to bottom until the viewport is covered and draws
// the visible part into buf.
func (l *scroller) render(area compose.Rect, buf *compose.Buffer, n int, box func(i int) compose.Box) {
	s := compose.NewStore().WithScroll(l.scroll)
	virtual := area.WithHeight(compose.MaxCoord - area.Y)
	limit := area.Y + l.scroll + area.Height
	stored := 0
	for i := range n {
		if st := s.StoredArea(); !st.Empty() && st.Bottom() >= limit {
			break
		}
		box(i).Store(s.BottomSpace(virtual), s)
		stored++
	}

	used := 0
	if st := s.StoredArea(); !st.Empty() {
		used = st.Bottom() - area.Y
	}
	l.items, l.complete = n, stored == n
	l.content, l.height = used, area.Height
	l.blank = l.scroll + area.Height - used
	l.hasBlank = l.blank >= 0
	s.Render(area, buf)
}
