package compose

// Borders selects which edges of a Block are drawn.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) has(edge Borders) bool { return b&edge != 0 }

// BorderSet holds the glyphs used to draw a border.
type BorderSet struct {
	TopLeft, Top, TopRight          string
	Left, Right                     string
	BottomLeft, Bottom, BottomRight string
}

var (
	PlainBorder = BorderSet{
		TopLeft: "┌", Top: "─", TopRight: "┐",
		Left: "│", Right: "│",
		BottomLeft: "└", Bottom: "─", BottomRight: "┘",
	}
	RoundedBorder = BorderSet{
		TopLeft: "╭", Top: "─", TopRight: "╮",
		Left: "│", Right: "│",
		BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
	}
	ThickBorder = BorderSet{
		TopLeft: "┏", Top: "━", TopRight: "┓",
		Left: "┃", Right: "┃",
		BottomLeft: "┗", Bottom: "━", BottomRight: "┛",
	}
	// OneEighthWideBorder draws thin bars just outside the content.
	OneEighthWideBorder = BorderSet{
		TopLeft: "▁", Top: "▁", TopRight: "▁",
		Left: "▏", Right: "▕",
		BottomLeft: "▔", Bottom: "▔", BottomRight: "▔",
	}
)

// Padding is blank space between a border and the content.
type Padding struct {
	Top, Right, Bottom, Left int
}

func PadTop(n int) Padding { return Padding{Top: n} }
func PadBottom(n int) Padding { return Padding{Bottom: n} }
func PadHorizontal(n int) Padding { return Padding{Left: n, Right: n} }
func PadVertical(n int) Padding { return Padding{Top: n, Bottom: n} }

// Block is a border with optional padding. It draws only its border glyphs,
// leaving the inside untouched.
type Block struct {
	borders Borders
	set     BorderSet
	style   Style
	padding Padding
}

// NewBlock returns a block without borders or padding.
func NewBlock() Block {
	return Block{set: PlainBorder}
}

// Bordered returns a block with all four plain borders.
func Bordered() Block {
	return NewBlock().Borders(BorderAll)
}

func (b Block) Borders(edges Borders) Block { b.borders = edges; return b }
func (b Block) BorderSet(set BorderSet) Block { b.set = set; return b }
func (b Block) BorderStyle(s Style) Block { b.style = s; return b }
func (b Block) Padding(p Padding) Block { b.padding = p; return b }

func (b Block) edge(e Borders) int {
	if b.borders.has(e) {
		return 1
	}
	return 0
}

// Inner is the part of area left for content once borders and padding are
// removed. It collapses to zero size rather than going negative.
func (b Block) Inner(area Rect) Rect {
	left := b.edge(BorderLeft) + b.padding.Left
	right := b.edge(BorderRight) + b.padding.Right
	top := b.edge(BorderTop) + b.padding.Top
	bottom := b.edge(BorderBottom) + b.padding.Bottom
	return Rect{
		X:      satAdd(area.X, min(left, area.Width)),
		Y:      satAdd(area.Y, min(top, area.Height)),
		Width:  satSub(area.Width, left+right),
		Height: satSub(area.Height, top+bottom),
	}
}

// Render draws the selected borders along the edges of area.
func (b Block) Render(area Rect, buf *Buffer) {
	if area.Empty() || b.borders == BorderNone {
		return
	}
	left, right := area.X, area.Right()-1
	top, bottom := area.Y, area.Bottom()-1
	// Only walk the part of the edges that can land in buf.
	vis := area.Intersection(buf.Area())
	if vis.Empty() {
		return
	}
	if b.borders.has(BorderTop) {
		for x := vis.X; x < vis.Right(); x++ {
			buf.SetStringN(x, top, b.set.Top, 1, b.style)
		}
	}
	if b.borders.has(BorderBottom) {
		for x := vis.X; x < vis.Right(); x++ {
			buf.SetStringN(x, bottom, b.set.Bottom, 1, b.style)
		}
	}
	if b.borders.has(BorderLeft) {
		for y := vis.Y; y < vis.Bottom(); y++ {
			buf.SetStringN(left, y, b.set.Left, 1, b.style)
		}
	}
	if b.borders.has(BorderRight) {
		for y := vis.Y; y < vis.Bottom(); y++ {
			buf.SetStringN(right, y, b.set.Right, 1, b.style)
		}
	}
	corner := func(x, y int, a, c Borders, glyph string) {
		if b.borders.has(a) && b.borders.has(c) {
			buf.SetStringN(x, y, glyph, 1, b.style)
		}
	}
	corner(left, top, BorderTop, BorderLeft, b.set.TopLeft)
	corner(right, top, BorderTop, BorderRight, b.set.TopRight)
	corner(left, bottom, BorderBottom, BorderLeft, b.set.BottomLeft)
	corner(right, bottom, BorderBottom, BorderRight, b.set.BottomRight)
}

// Store places the block over all of area.
func (b Block) Store(area Rect, s *Store) { s.Place(area, b) }

// Wrap returns a Box that lays fn out inside the block.
func (b Block) Wrap(fn func(inner Rect, s *Store)) Box {
	return Box{block: b, content: fn}
}

// WrapChild returns a Box that stores child inside the block.
func (b Block) WrapChild(child Storeable) Box {
	return b.Wrap(child.Store)
}
