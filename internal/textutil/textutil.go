// Package textutil measures, truncates and wraps text by grapheme cluster.
// Every width is taken from uniseg so measuring and drawing agree.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode characters.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
// The result will be at most maxWidth visual columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	limit := maxWidth - VisualWidth(TruncateEllipsis)
	var sb strings.Builder
	w, state := 0, -1
	for len(s) > 0 {
		var cluster string
		var cw int
		cluster, s, cw, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w+cw > limit {
			break
		}
		sb.WriteString(cluster)
		w += cw
	}
	return sb.String() + TruncateEllipsis
}

// DropLastGrapheme removes the final grapheme cluster of s.
func DropLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

// IsBlank reports whether r is whitespace that occupies a column. Control
// characters such as newlines and tabs are not blank.
func IsBlank(r rune) bool {
	return unicode.IsSpace(r) && !unicode.IsControl(r)
}

// Segment is a byte range [Start, End) of a wrapped string that forms one
// output line.
type Segment struct {
	Start, End int
}

// piece is a run of non-blank text followed by the blanks after it. Pieces
// of a word that was broken at width have no blanks between them.
type piece struct {
	start, end int // word
	gapEnd     int // word end plus trailing blanks
	width      int
	gapWidth   int
}

// Wrap greedily wraps s to width columns and returns one segment per line.
// Newlines force a break. Words wider than width are broken between grapheme
// clusters. Blanks at a break point are dropped, as are blanks after the last
// word of each line; leading blanks of a paragraph are kept.
func Wrap(s string, width int) []Segment {
	if width <= 0 {
		return nil
	}
	var segs []Segment
	offset := 0
	for _, para := range strings.Split(s, "\n") {
		segs = append(segs, wrapParagraph(s, offset, offset+len(para), width)...)
		offset += len(para) + 1
	}
	return segs
}

func wrapParagraph(s string, start, end, width int) []Segment {
	lead := start
	for lead < end {
		r, size := utf8.DecodeRuneInString(s[lead:end])
		if !IsBlank(r) {
			break
		}
		lead += size
	}
	pieces := splitPieces(s, lead, end, width)
	if len(pieces) == 0 {
		return []Segment{{Start: start, End: start}}
	}

	var segs []Segment
	lineStart, lineEnd := start, start
	lineWidth := uniseg.StringWidth(s[start:lead])
	gap := 0
	empty := true
	for _, p := range pieces {
		if !empty && lineWidth+gap+p.width > width {
			segs = append(segs, Segment{Start: lineStart, End: lineEnd})
			lineStart, lineWidth, gap, empty = p.start, 0, 0, true
		}
		if empty && lineWidth > 0 && lineWidth+p.width > width {
			// Leading blanks leave no room for the first word.
			segs = append(segs, Segment{Start: lineStart, End: lineStart})
			lineStart, lineWidth = p.start, 0
		}
		lineWidth += gap + p.width
		lineEnd = p.end
		gap = p.gapWidth
		empty = false
	}
	return append(segs, Segment{Start: lineStart, End: lineEnd})
}

// splitPieces splits s[start:end] into words with their trailing blanks,
// breaking any word wider than width into width-sized pieces.
func splitPieces(s string, start, end, width int) []piece {
	var pieces []piece
	i := start
	for i < end {
		wordEnd := i
		for wordEnd < end {
			r, size := utf8.DecodeRuneInString(s[wordEnd:end])
			if IsBlank(r) {
				break
			}
			wordEnd += size
		}
		gapEnd := wordEnd
		for gapEnd < end {
			r, size := utf8.DecodeRuneInString(s[gapEnd:end])
			if !IsBlank(r) {
				break
			}
			gapEnd += size
		}
		gapWidth := uniseg.StringWidth(s[wordEnd:gapEnd])

		if w := uniseg.StringWidth(s[i:wordEnd]); w <= width {
			pieces = append(pieces, piece{start: i, end: wordEnd, gapEnd: gapEnd, width: w, gapWidth: gapWidth})
		} else {
			pieces = append(pieces, breakWord(s, i, wordEnd, width)...)
			last := &pieces[len(pieces)-1]
			last.gapEnd, last.gapWidth = gapEnd, gapWidth
		}
		i = gapEnd
	}
	return pieces
}

func breakWord(s string, start, end, width int) []piece {
	var pieces []piece
	cur := piece{start: start, end: start, gapEnd: start}
	state := -1
	pos := start
	rest := s[start:end]
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cur.width > 0 && cur.width+w > width {
			pieces = append(pieces, cur)
			cur = piece{start: pos, end: pos, gapEnd: pos}
		}
		pos += len(cluster)
		cur.end, cur.gapEnd = pos, pos
		cur.width += w
	}
	return append(pieces, cur)
}
