package compose

type placement struct {
	area     Rect
	renderer Renderer
}

// Store collects renderers placed on a virtual surface during one layout
// pass, then draws the visible part of that surface into a screen buffer.
//
// A Store is built fresh for every frame: widgets are laid out top to bottom
// with BottomSpace telling each one where the previous ones ended, and
// Render only draws placements that intersect the scrolled viewport.
type Store struct {
	placements []placement
	stored     Rect
	scroll     int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// WithScroll sets the vertical offset. Positive values reveal later rows.
func (s *Store) WithScroll(n int) *Store {
	s.scroll = n
	return s
}

// Scroll is the vertical offset.
func (s *Store) Scroll() int { return s.scroll }

// Len is the number of placements recorded.
func (s *Store) Len() int { return len(s.placements) }

// Add lays child out inside area.
func (s *Store) Add(area Rect, child Storeable) {
	child.Store(area, s)
}

// Place records r at area. Empty areas are dropped.
func (s *Store) Place(area Rect, r Renderer) {
	if area.Empty() {
		return
	}
	s.placements = append(s.placements, placement{area: area, renderer: r})
	s.stored = s.stored.Union(area)
}

// Extend moves every placement of other into s.
func (s *Store) Extend(other *Store) {
	for _, p := range other.placements {
		s.Place(p.area, p.renderer)
	}
}

// StoredArea is the bounding box of every placement, or the zero Rect.
func (s *Store) StoredArea() Rect { return s.stored }

// BottomSpace is the part of viewport below everything stored so far. Its
// height is zero once the stored content reaches the viewport's bottom.
func (s *Store) BottomSpace(viewport Rect) Rect {
	y := min(max(s.stored.Bottom(), viewport.Y), viewport.Bottom())
	return Rect{X: viewport.X, Y: y, Width: viewport.Width, Height: viewport.Bottom() - y}
}

// window is the region of content space visible through viewport.
func (s *Store) window(viewport Rect) Rect {
	top := clamp(viewport.Y + s.scroll)
	bottom := clamp(viewport.Bottom() + s.scroll)
	shifted := Rect{X: viewport.X, Y: top, Width: viewport.Width, Height: satSub(bottom, top)}
	return s.stored.Intersection(shifted)
}

// Render draws the content visible through viewport into buf. Content row y
// lands on buffer row y - scroll; anything outside buf is clipped.
//
// Placements are drawn into a scratch buffer covering only the visible
// window, so a tall surface costs nothing for rows that are scrolled away.
func (s *Store) Render(viewport Rect, buf *Buffer) {
	if s.stored.Empty() {
		return
	}
	window := s.window(viewport)
	if window.Empty() {
		return
	}
	scratch := NewBuffer(window)
	for _, p := range s.placements {
		if p.area.Intersects(window) {
			p.renderer.Render(p.area, scratch)
		}
	}

	target := buf.Area()
	x1, x2 := max(window.X, target.X), min(window.Right(), target.Right())
	if x2 <= x1 {
		return
	}
	for y := window.Y; y < window.Bottom(); y++ {
		dy := y - s.scroll
		if dy < target.Y || dy >= target.Bottom() {
			continue
		}
		copyRow(buf, scratch, x1, x2-x1, y, dy)
	}
}
