package widgets

import (
	"strings"

	"skyfeed/internal/compose"
)

const tabMarker = "┃"

// Tab is one entry of the tab bar. Inactive tabs are shown dimmed and
// cannot be selected.
type Tab struct {
	Label    string
	Active   bool
	Selected bool
}

func (t Tab) Store(area compose.Rect, s *compose.Store) {
	style := compose.NewStyle()
	switch {
	case !t.Active:
		style = dimStyle
	case t.Selected:
		style = boldStyle
	}
	marker := compose.Raw(" ")
	if t.Selected {
		marker = compose.Styled(tabMarker, accentStyle)
	}
	compose.NewBlock().
		Padding(compose.PadVertical(1)).
		WrapChild(compose.NewText(marker, compose.Raw(" "), compose.Styled(t.Label, style))).
		FitVertical().
		Store(area, s)
}

// TabBar stacks tabs vertically with a rule between each pair.
type TabBar []Tab

func (tb TabBar) Render(area compose.Rect, buf *compose.Buffer) {
	s := compose.NewStore()
	sep := compose.Leaf(compose.Line{compose.Styled(strings.Repeat("─", area.Width), accentDimStyle)})
	for i, tab := range tb {
		if i != 0 {
			rule := s.BottomSpace(area)
			sep.Store(rule.WithHeight(min(rule.Height, 1)), s)
		}
		tab.Store(s.BottomSpace(area), s)
	}
	s.Render(area, buf)
}
