package compose

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"
	"github.com/rivo/uniseg"
)

// Buffer is a grid of cells covering Area. Cells are addressed with absolute
// coordinates; writes outside the area are dropped.
//
// Buffer implements cellbuf.CellBuffer, so pre-styled ANSI strings can be
// printed into it with cellbuf.SetContentRect.
type Buffer struct {
	area Rect
	grid *cellbuf.Buffer
}

var _ cellbuf.CellBuffer = (*Buffer)(nil)

// NewBuffer returns a blank buffer covering area.
func NewBuffer(area Rect) *Buffer {
	return &Buffer{area: area, grid: cellbuf.NewBuffer(area.Width, area.Height)}
}

// Area is the region of the screen the buffer covers.
func (b *Buffer) Area() Rect { return b.area }

func (b *Buffer) inside(x, y int) bool {
	return x >= b.area.X && y >= b.area.Y && x < b.area.Right() && y < b.area.Bottom()
}

// Cell returns the cell at (x, y), or nil when outside the area.
func (b *Buffer) Cell(x, y int) *cellbuf.Cell {
	if !b.inside(x, y) {
		return nil
	}
	return b.grid.Cell(x-b.area.X, y-b.area.Y)
}

// SetCell stores a copy of c at (x, y). A nil cell clears the position.
func (b *Buffer) SetCell(x, y int, c *cellbuf.Cell) bool {
	if !b.inside(x, y) {
		return false
	}
	return b.grid.SetCell(x-b.area.X, y-b.area.Y, c)
}

// Bounds is Area in cellbuf terms.
func (b *Buffer) Bounds() cellbuf.Rectangle { return b.area.rectangle() }

// SetString writes s starting at (x, y) with the given style and returns the
// number of columns used. Output stops at the right edge of the area;
// zero-width clusters such as control characters are skipped.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringN(x, y, s, MaxCoord, style)
}

// SetStringN is SetString limited to maxWidth columns.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style Style) int {
	if y < b.area.Y || y >= b.area.Bottom() || maxWidth <= 0 {
		return 0
	}
	cs := style.cellStyle()
	start := x
	right := min(b.area.Right(), satAdd(x, maxWidth))
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w == 0 {
			continue
		}
		if x+w > right {
			break
		}
		c := cellbuf.NewGraphemeCell(cluster)
		c.Width = w
		c.Style = cs
		b.SetCell(x, y, c)
		x += w
	}
	return x - start
}

// Render returns the buffer as rows of ANSI-styled text separated by CRLF.
func (b *Buffer) Render() string {
	return cellbuf.Render(b.grid)
}

// Row returns the plain text of row y, one column per cell, with blank cells
// as spaces. Wide clusters occupy their own width.
func (b *Buffer) Row(y int) string {
	if y < b.area.Y || y >= b.area.Bottom() {
		return ""
	}
	var sb strings.Builder
	for x := b.area.X; x < b.area.Right(); x++ {
		c := b.Cell(x, y)
		if c.Width == 0 && c.Rune == 0 {
			continue
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Rows returns every row of the buffer as plain text.
func (b *Buffer) Rows() []string {
	rows := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		rows = append(rows, b.Row(y))
	}
	return rows
}

// copyRow copies the cells of src row sy, columns [x, x+width), to dst row dy.
// Placeholder halves of wide clusters are skipped; writing the wide cell
// restores them.
func copyRow(dst, src *Buffer, x, width, sy, dy int) {
	for cx := x; cx < x+width; cx++ {
		c := src.Cell(cx, sy)
		if c == nil || (c.Width == 0 && c.Rune == 0) {
			continue
		}
		dst.SetCell(cx, dy, c)
	}
}
