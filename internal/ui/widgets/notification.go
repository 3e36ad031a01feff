package widgets

import (
	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
)

var notificationVerbs = map[string]string{
	bsky.ReasonLike:    " liked your post",
	bsky.ReasonRepost:  " reposted your post",
	bsky.ReasonFollow:  " followed you",
	bsky.ReasonMention: " mentioned you",
	bsky.ReasonReply:   " replied to your post",
	bsky.ReasonQuote:   " quoted your post",
}

// Notification is one entry of the notification list: who did what, and for
// mentions, replies and quotes a dim preview of their post.
type Notification struct {
	title   *compose.Text
	preview *compose.Text
	IsRead  bool
}

// NewNotification builds the widget for n. Reasons this client does not
// know produce a widget that stores nothing.
func NewNotification(n bsky.Notification) *Notification {
	w := &Notification{IsRead: n.IsRead}
	verb, ok := notificationVerbs[n.Reason]
	if !ok {
		return w
	}
	title := compose.NewText(compose.Styled(n.Author.Account().Name, boldStyle), compose.Raw(verb))
	w.title = &title
	switch n.Reason {
	case bsky.ReasonMention, bsky.ReasonReply, bsky.ReasonQuote:
		if post, ok := n.Post(); ok {
			preview := compose.StyledText(post.Text, dimStyle)
			w.preview = &preview
		}
	}
	return w
}

func (n *Notification) Store(area compose.Rect, s *compose.Store) {
	if n.title == nil {
		return
	}
	n.title.Store(area, s)
	if n.preview != nil {
		n.preview.Store(s.BottomSpace(area), s)
	}
}

// Notifications is the scrollable notification list.
type Notifications struct {
	scroller
	items []*Notification
}

// NewNotifications returns an empty list.
func NewNotifications() *Notifications { return &Notifications{} }

// Append adds older notifications at the bottom.
func (l *Notifications) Append(ns ...bsky.Notification) {
	for _, n := range ns {
		l.items = append(l.items, NewNotification(n))
	}
}

// Len is the number of notifications held.
func (l *Notifications) Len() int { return len(l.items) }

// ClampToEnd keeps the last notification from scrolling out of view.
func (l *Notifications) ClampToEnd() { l.clampToEnd(len(l.items)) }

// Render draws unread entries over a thick accent rule and read ones over a
// thin dim rule.
func (l *Notifications) Render(area compose.Rect, buf *compose.Buffer) {
	l.render(area, buf, len(l.items), func(i int) compose.Box {
		n := l.items[i]
		block := compose.NewBlock().
			Borders(compose.BorderBottom).
			BorderStyle(accentStyle).
			BorderSet(compose.ThickBorder)
		if n.IsRead {
			block = compose.NewBlock().
				Borders(compose.BorderBottom).
				BorderStyle(accentDimStyle)
		}
		return block.WrapChild(n).FitVertical()
	})
}
