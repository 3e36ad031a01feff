package compose

import (
	"strings"
	"unicode"

	"skyfeed/internal/textutil"
)

// Ellipsis marks text cut short by a height limit.
const Ellipsis = textutil.TruncateEllipsis

// Alignment positions each line horizontally within the offered area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Text is a paragraph of styled spans that reflows to whatever area it is
// stored into. Copies share their spans and wrap cache.
type Text struct {
	spans         []Span
	alignment     Alignment
	ignoreIfEmpty bool
	border        *Block
	cache         *wrapCache
}

// NewText builds a paragraph from spans. Empty paragraphs are ignored when
// stored unless IgnoreIfEmpty(false) is set.
func NewText(spans ...Span) Text {
	return Text{
		spans:         spans,
		ignoreIfEmpty: true,
		cache:         newWrapCache(),
	}
}

// PlainText is NewText with one unstyled span.
func PlainText(s string) Text { return NewText(Raw(s)) }

// StyledText is NewText with one span in the given style.
func StyledText(s string, style Style) Text { return NewText(Styled(s, style)) }

func (t Text) Align(a Alignment) Text { t.alignment = a; return t }

// IgnoreIfEmpty controls whether a paragraph whose spans have no visible
// width contributes anything when stored.
func (t Text) IgnoreIfEmpty(v bool) Text { t.ignoreIfEmpty = v; return t }

// Bordered draws b tightly around the wrapped lines.
func (t Text) Bordered(b Block) Text { t.border = &b; return t }

// Invalidate drops every memoized wrap result.
func (t Text) Invalidate() {
	if t.cache != nil {
		t.cache.reset()
	}
}

// Wraps reports how many times the paragraph has actually been reflowed.
func (t Text) Wraps() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.wraps
}

func (t Text) empty() bool {
	for _, s := range t.spans {
		if s.Width() > 0 {
			return false
		}
	}
	return true
}

// Store places one renderer per wrapped line, aligned within area.
func (t Text) Store(area Rect, s *Store) {
	if area.Empty() {
		return
	}
	if t.ignoreIfEmpty && t.empty() {
		return
	}
	if t.border != nil {
		inner := t
		inner.border = nil
		t.border.WrapChild(inner).FitAll().Store(area, s)
		return
	}
	for y, line := range t.Lines(area.Width, area.Height) {
		// An empty line still takes its row.
		w := max(min(line.Width(), area.Width), 1)
		x := area.X
		switch t.alignment {
		case AlignCenter:
			x += satSub(area.Width, w) / 2
		case AlignRight:
			x += satSub(area.Width, w)
		}
		s.Place(Rect{X: x, Y: satAdd(area.Y, y), Width: w, Height: 1}, line)
	}
}

// Lines wraps the paragraph to at most maxHeight lines of at most width
// columns. When lines are cut off the last visible one ends in Ellipsis.
func (t Text) Lines(width, maxHeight int) []Line {
	if width <= 0 || maxHeight <= 0 {
		return nil
	}
	if t.cache == nil {
		lines, _ := t.reflow(width, maxHeight)
		return lines
	}
	if lines, ok := t.cache.get(width, maxHeight); ok {
		return lines
	}
	lines, truncated := t.reflow(width, maxHeight)
	t.cache.put(width, maxHeight, cachedLines{lines: lines, truncated: truncated})
	return lines
}

// run is a span positioned at a byte offset of the text being wrapped.
type run struct {
	start int
	span  Span
}

func (t Text) reflow(width, maxHeight int) (lines []Line, truncated bool) {
	if t.cache != nil {
		t.cache.wraps++
	}
	for _, span := range t.spans {
		var runs []run
		var sb strings.Builder
		if len(lines) > 0 {
			for _, prev := range lines[len(lines)-1] {
				runs = append(runs, run{start: sb.Len(), span: prev})
				sb.WriteString(prev.Content)
			}
		}
		runs = append(runs, run{start: sb.Len(), span: span})
		sb.WriteString(span.Content)
		content := sb.String()

		segs := textutil.Wrap(content, width)
		segs[len(segs)-1].End = len(content)

		for i, seg := range segs {
			line := sliceRuns(runs, seg, span.Style)
			switch {
			case i == 0 && len(lines) > 0:
				lines[len(lines)-1] = line
			case len(lines) < maxHeight:
				lines = append(lines, line)
			default:
				return markTruncated(trimEnd(lines)), true
			}
		}
	}
	return trimEnd(lines), false
}

// sliceRuns cuts the part of runs covering seg into a line. Empty runs that
// sit inside the segment are kept so span boundaries survive rewrapping. A
// segment that covers nothing yields a single empty span in style.
func sliceRuns(runs []run, seg textutil.Segment, style Style) Line {
	var line Line
	for _, r := range runs {
		end := r.start + len(r.span.Content)
		if r.start == end {
			if r.start >= seg.Start && r.start <= seg.End {
				line = append(line, r.span)
			}
			continue
		}
		lo, hi := max(r.start, seg.Start), min(end, seg.End)
		if lo >= hi {
			continue
		}
		line = append(line, Span{Content: r.span.Content[lo-r.start : hi-r.start], Style: r.span.Style})
	}
	if len(line) == 0 {
		line = Line{{Style: style}}
	}
	return line
}

// trimEnd strips trailing whitespace from every line, walking back through
// spans that end up empty.
func trimEnd(lines []Line) []Line {
	for _, line := range lines {
		for i := len(line) - 1; i >= 0; i-- {
			line[i].Content = strings.TrimRightFunc(line[i].Content, unicode.IsSpace)
			if line[i].Content != "" {
				break
			}
		}
	}
	return lines
}

// markTruncated replaces the last grapheme of the last line with Ellipsis.
func markTruncated(lines []Line) []Line {
	if len(lines) == 0 {
		return lines
	}
	last := lines[len(lines)-1]
	if len(last) == 0 {
		lines[len(lines)-1] = Line{Raw(Ellipsis)}
		return lines
	}
	i := len(last) - 1
	for i > 0 && last[i].Content == "" {
		i--
	}
	last[i].Content = textutil.DropLastGrapheme(last[i].Content) + Ellipsis
	return lines
}

// wrapCache memoizes reflow results by area size. It is not synchronized:
// a Text is only laid out from the render loop.
type wrapCache struct {
	entries map[[2]int]cachedLines
	wraps   int
}

type cachedLines struct {
	lines     []Line
	truncated bool
}

// maxCacheEntries bounds memory across resizes and scroll-dependent heights.
const maxCacheEntries = 16

func newWrapCache() *wrapCache {
	return &wrapCache{entries: make(map[[2]int]cachedLines)}
}

func (c *wrapCache) reset() {
	clear(c.entries)
}

// get looks up an exact size first. A result that was not truncated is also
// valid for any height that can hold all of its lines.
func (c *wrapCache) get(width, height int) ([]Line, bool) {
	if e, ok := c.entries[[2]int{width, height}]; ok {
		return e.lines, true
	}
	for k, e := range c.entries {
		if k[0] == width && !e.truncated && len(e.lines) <= height {
			c.entries[[2]int{width, height}] = e
			return e.lines, true
		}
	}
	return nil, false
}

func (c *wrapCache) put(width, height int, e cachedLines) {
	if len(c.entries) >= maxCacheEntries {
		clear(c.entries)
	}
	c.entries[[2]int{width, height}] = e
}
