package bsky

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
)

// ErrEndOfList is returned by a pager once the server has no older items.
var ErrEndOfList = errors.New("no more items")

// Default page sizes.
const (
	DefaultTimelineLimit     = 15
	DefaultNotificationLimit = 40
)

// TimelinePage is one page of the home timeline.
type TimelinePage struct {
	Feed   []FeedViewPost `json:"feed"`
	Cursor string         `json:"cursor,omitempty"`
}

// Timeline fetches one page of the home timeline older than cursor.
func (c *Client) Timeline(ctx context.Context, cursor string, limit int) (*TimelinePage, error) {
	var page TimelinePage
	if err := c.query(ctx, "app.bsky.feed.getTimeline", pageParams(cursor, limit), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// NotificationPage is one page of the notification list.
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Cursor        string         `json:"cursor,omitempty"`
}

// Notifications fetches one page of notifications older than cursor.
func (c *Client) Notifications(ctx context.Context, cursor string, limit int) (*NotificationPage, error) {
	var page NotificationPage
	if err := c.query(ctx, "app.bsky.notification.listNotifications", pageParams(cursor, limit), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func pageParams(cursor string, limit int) url.Values {
	v := url.Values{}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

// Pager walks a cursor-paginated list from newest to oldest. Next may be
// called from any goroutine; calls are serialized.
type Pager[T any] struct {
	fetch func(ctx context.Context, cursor string) ([]T, string, error)

	mu     sync.Mutex
	cursor string
	done   bool
}

// Next returns the following page. Once the server stops returning a cursor
// the last page is delivered and later calls return ErrEndOfList.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return nil, ErrEndOfList
	}
	items, cursor, err := p.fetch(ctx, p.cursor)
	if err != nil {
		return nil, err
	}
	p.cursor = cursor
	p.done = cursor == ""
	return items, nil
}

// Done reports whether the end of the list was reached.
func (p *Pager[T]) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// TimelinePager pages through the home timeline limit posts at a time.
func (c *Client) TimelinePager(limit int) *Pager[FeedViewPost] {
	return &Pager[FeedViewPost]{fetch: func(ctx context.Context, cursor string) ([]FeedViewPost, string, error) {
		page, err := c.Timeline(ctx, cursor, limit)
		if err != nil {
			return nil, "", err
		}
		return page.Feed, page.Cursor, nil
	}}
}

// NotificationPager pages through notifications limit entries at a time.
func (c *Client) NotificationPager(limit int) *Pager[Notification] {
	return &Pager[Notification]{fetch: func(ctx context.Context, cursor string) ([]Notification, string, error) {
		page, err := c.Notifications(ctx, cursor, limit)
		if err != nil {
			return nil, "", err
		}
		return page.Notifications, page.Cursor, nil
	}}
}
