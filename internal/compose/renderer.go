package compose

// Renderer draws itself into buf, confined to area.
type Renderer interface {
	Render(area Rect, buf *Buffer)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(area Rect, buf *Buffer)

func (f RenderFunc) Render(area Rect, buf *Buffer) { f(area, buf) }

// Storeable lays itself out inside area by placing renderers into s. It may
// use less than area, or extend below it when area is a virtual surface.
type Storeable interface {
	Store(area Rect, s *Store)
}

// StoreFunc adapts a plain function to Storeable.
type StoreFunc func(area Rect, s *Store)

func (f StoreFunc) Store(area Rect, s *Store) { f(area, s) }

// Leaf stores r over the whole offered area.
func Leaf(r Renderer) Storeable {
	return StoreFunc(func(area Rect, s *Store) { s.Place(area, r) })
}
