package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
	"skyfeed/internal/logger"
	"skyfeed/internal/pending"
	"skyfeed/internal/ui/widgets"
)

// retryDelay is how long a feed page waits after a failed fetch.
const retryDelay = 5 * time.Second

// spinnerRows is the height of the loading row under the last item.
const spinnerRows = 3

// Pager yields successive pages of a list.
type Pager[T any] interface {
	Next(ctx context.Context) ([]T, error)
	Done() bool
}

// feedList is a scrolled list widget that reports the rows it left blank.
type feedList interface {
	compose.Renderer
	Len() int
	Blank() (int, bool)
	ScrollBy(n int)
	ScrollTop()
	ClampToEnd()
}

// FeedPage shows an endlessly scrolling list. Whenever the list leaves part of
// the viewport blank and nothing is loading, it fetches the next page.
type FeedPage[T any] struct {
	ctx   context.Context
	pager Pager[T]
	list  feedList
	add   func(...T)
	log   *slog.Logger

	fetch      *pending.Result[[]T]
	retryAfter time.Time
	frame      time.Time
	started    bool
	rendered   bool // the list was drawn since the last append
}

// NewHomePage shows the signed-in user's timeline.
func NewHomePage(ctx context.Context, pager Pager[bsky.FeedViewPost]) *FeedPage[bsky.FeedViewPost] {
	posts := widgets.NewPosts()
	return newFeedPage(ctx, "home", pager, posts, posts.Append)
}

// NewNotificationsPage shows the signed-in user's notifications.
func NewNotificationsPage(ctx context.Context, pager Pager[bsky.Notification]) *FeedPage[bsky.Notification] {
	items := widgets.NewNotifications()
	return newFeedPage(ctx, "notifications", pager, items, items.Append)
}

func newFeedPage[T any](ctx context.Context, name string, pager Pager[T], list feedList, add func(...T)) *FeedPage[T] {
	return &FeedPage[T]{
		ctx:   ctx,
		pager: pager,
		list:  list,
		add:   add,
		log:   logger.ComponentLogger(name),
	}
}

func (p *FeedPage[T]) Init() tea.Cmd { return nil }

// CapturesInput is always false; feed pages have no text inputs.
func (p *FeedPage[T]) CapturesInput() bool { return false }

// Len is the number of items loaded so far.
func (p *FeedPage[T]) Len() int { return p.list.Len() }

// Loading reports whether a page is being fetched.
func (p *FeedPage[T]) Loading() bool { return p.fetch.IsLoading() }

// Close cancels a running fetch.
func (p *FeedPage[T]) Close() { p.fetch.Cancel() }

func (p *FeedPage[T]) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		p.frame = msg.Time
		p.poll()
	case ScrollMsg:
		if msg.Top {
			p.list.ScrollTop()
		} else {
			p.list.ScrollBy(msg.Delta)
		}
		p.clampScroll()
	}
	return p, nil
}

// clampScroll bounds scrolling once there is nothing more to load.
func (p *FeedPage[T]) clampScroll() {
	if p.pager.Done() {
		p.list.ClampToEnd()
	}
}

// needsMore reports whether the last render left rows to fill. Until the
// list is drawn with the latest items its blank count is stale.
func (p *FeedPage[T]) needsMore() bool {
	if !p.started {
		return true
	}
	if !p.rendered {
		return false
	}
	blank, ok := p.list.Blank()
	return ok && blank > 0
}

func (p *FeedPage[T]) poll() {
	if items, err, ok := p.fetch.Take(); ok {
		switch {
		case errors.Is(err, bsky.ErrEndOfList):
		case err != nil:
			p.log.Warn("fetch failed", "err", err)
			p.retryAfter = p.frame.Add(retryDelay)
		default:
			p.log.Debug("page loaded", "items", len(items))
			p.add(items...)
			p.rendered = false
		}
	}
	if !p.fetch.IsEmpty() || p.pager.Done() || p.frame.Before(p.retryAfter) || !p.needsMore() {
		return
	}
	p.started = true
	p.fetch = pending.Start(p.ctx, p.pager.Next)
}

func (p *FeedPage[T]) Render(area compose.Rect, buf *compose.Buffer) {
	cols := Split(area, Horizontal, 0, Fill(1), Fill(5), Fill(1))
	feed := cols[1]
	p.clampScroll()
	p.list.Render(feed, buf)
	p.rendered = true

	blank, ok := p.list.Blank()
	if !ok || blank <= 0 {
		return
	}
	blank = min(blank, feed.Height)
	below := feed.WithY(feed.Bottom() - blank).WithHeight(min(blank, spinnerRows))
	switch {
	case p.fetch.IsLoading():
		widgets.SpinnerAt(p.frame).Render(below, buf)
	case p.list.Len() == 0 && p.pager.Done():
		s := compose.NewStore()
		compose.StyledText("Nothing here yet", compose.NewStyle().Dim(true)).
			Align(compose.AlignCenter).
			Store(below, s)
		s.Render(below, buf)
	}
}
