package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
)

type fakePager[T any] struct {
	mu    sync.Mutex
	pages [][]T
	err   error
	calls int
}

func (f *fakePager[T]) Next(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.pages) == 0 {
		return nil, bsky.ErrEndOfList
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakePager[T]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pages) == 0 && f.err == nil
}

func (f *fakePager[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func feedPost(n int) bsky.FeedViewPost {
	return bsky.FeedViewPost{Post: bsky.PostView{
		URI:    fmt.Sprintf("at://did:plc:alice/app.bsky.feed.post/%d", n),
		Author: bsky.Profile{DID: "did:plc:alice", Handle: "alice.test"},
		Record: bsky.Record{Type: bsky.TypePost, Text: fmt.Sprintf("post number %d", n)},
	}}
}

func feedPage(from, n int) []bsky.FeedViewPost {
	out := make([]bsky.FeedViewPost, n)
	for i := range out {
		out[i] = feedPost(from + i)
	}
	return out
}

// settleFeed sends frames until no fetch is running.
func settleFeed[T any](t *testing.T, p *FeedPage[T]) {
	t.Helper()
	require.Eventually(t, func() bool {
		frame(p)
		return p.fetch.IsEmpty()
	}, time.Second, time.Millisecond)
}

func render(p Page, width, height int) []string {
	buf := compose.NewBuffer(compose.NewRect(0, 0, width, height))
	p.Render(buf.Area(), buf)
	return buf.Rows()
}

func TestFeedPage_FirstFrameFetches(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{pages: [][]bsky.FeedViewPost{feedPage(0, 2), feedPage(2, 2)}}
	p := NewHomePage(context.Background(), pager)

	frame(p)
	assert.False(t, p.fetch.IsEmpty(), "nothing rendered yet, so the first page is requested")
	settleFeed(t, p)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, pager.Calls())
}

func TestFeedPage_FetchesWhileBlank(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{pages: [][]bsky.FeedViewPost{feedPage(0, 1), feedPage(1, 1), feedPage(2, 10)}}
	p := NewHomePage(context.Background(), pager)
	settleFeed(t, p)

	// One post leaves most of a 20-row viewport blank.
	render(p, 70, 20)
	settleFeed(t, p)
	assert.Equal(t, 2, p.Len())

	render(p, 70, 20)
	settleFeed(t, p)
	assert.Equal(t, 12, p.Len())

	// Twelve posts cover the viewport; nothing more is requested.
	render(p, 70, 20)
	frame(p)
	assert.True(t, p.fetch.IsEmpty())
	assert.Equal(t, 3, pager.Calls())
}

func TestFeedPage_StopsAtEndOfList(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{pages: [][]bsky.FeedViewPost{feedPage(0, 1)}}
	p := NewHomePage(context.Background(), pager)
	settleFeed(t, p)
	render(p, 70, 20)

	frame(p)
	assert.True(t, p.fetch.IsEmpty(), "the pager is done")
	assert.Equal(t, 1, pager.Calls())
}

func TestFeedPage_RetriesAfterDelay(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{err: errors.New("connection refused")}
	p := NewHomePage(context.Background(), pager)
	settleFeed(t, p)
	require.Equal(t, 1, pager.Calls())
	render(p, 70, 20)

	now := time.Now()
	p.Update(FrameMsg{Time: now})
	assert.True(t, p.fetch.IsEmpty(), "no retry before the delay")

	p.Update(FrameMsg{Time: now.Add(retryDelay + time.Second)})
	assert.False(t, p.fetch.IsEmpty(), "retried after the delay")
}

func TestFeedPage_SpinnerAndEmptyState(t *testing.T) {
	block := make(chan struct{})
	pager := &blockingPager{release: block}
	p := NewNotificationsPage(context.Background(), pager)
	frame(p)
	require.True(t, p.Loading())

	rows := render(p, 70, 10)
	assert.Contains(t, rows[1], "• • • • •", "spinner sits at the top of the blank area")

	close(block)
	settleFeed(t, p)
	rows = render(p, 70, 10)
	assert.Contains(t, rows[0], "Nothing here yet")
}

func TestFeedPage_Scroll(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{pages: [][]bsky.FeedViewPost{feedPage(0, 10)}}
	p := NewHomePage(context.Background(), pager)
	settleFeed(t, p)

	top := render(p, 70, 12)
	p.Update(ScrollMsg{Delta: 6})
	scrolled := render(p, 70, 12)
	assert.NotEqual(t, top, scrolled)
	assert.Equal(t, top[6:], scrolled[:6], "scrolling moves rows up")

	p.Update(ScrollMsg{Top: true})
	assert.Equal(t, top, render(p, 70, 12))
	assert.True(t, strings.Contains(strings.Join(top, "\n"), "post number 0"))
}

func TestFeedPage_ScrollStopsAtEndOfFinishedList(t *testing.T) {
	pager := &fakePager[bsky.FeedViewPost]{pages: [][]bsky.FeedViewPost{feedPage(0, 10)}}
	p := NewHomePage(context.Background(), pager)
	settleFeed(t, p)
	require.True(t, pager.Done())

	render(p, 70, 12)
	p.Update(ScrollMsg{Delta: 1000})
	render(p, 70, 12)
	p.Update(ScrollMsg{Delta: 1000})
	rows := render(p, 70, 12)
	assert.Contains(t, strings.Join(rows, "\n"), "post number 9", "the last post stays on screen")
}

// blockingPager returns one empty last page once release is closed.
type blockingPager struct {
	release chan struct{}
	mu      sync.Mutex
	done    bool
}

func (b *blockingPager) Next(ctx context.Context) ([]bsky.Notification, error) {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done = true
	return nil, nil
}

func (b *blockingPager) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}
