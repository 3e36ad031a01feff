package widgets

import (
	"fmt"

	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
)

const unimplemented = "unimplemented!"

// Post is one feed entry laid out as repost banner, author line, content,
// embed and counters. Its Texts are built once so wraps are reused across
// frames.
type Post struct {
	URI        string
	repostedBy compose.Text
	reposted   bool
	author     compose.Text
	content    compose.Text
	embed      *Embed
	stats      compose.Text
}

// NewPost builds the widget for a timeline entry.
func NewPost(fv bsky.FeedViewPost) *Post {
	p := newPost(fv.Post.URI, fv.Post.Author, fv.Post.Record, fv.Post.ReplyCount, fv.Post.RepostCount, fv.Post.LikeCount)
	if by, ok := fv.RepostedBy(); ok {
		p.reposted = true
		p.repostedBy = compose.PlainText("  Reposted by " + by.Account().Name)
	}
	if fv.Post.Embed != nil {
		p.embed = NewEmbed(fv.Post.Embed)
	}
	return p
}

func newQuotedPost(q *bsky.QuotedPost) *Post {
	p := newPost(q.URI, q.Author, q.Value, q.ReplyCount, q.RepostCount, q.LikeCount)
	if len(q.Embeds) > 0 {
		p.embed = NewEmbed(&q.Embeds[0])
	}
	return p
}

func newPost(uri string, author bsky.Profile, record bsky.Record, replies, reposts, likes int) *Post {
	content := unimplemented
	if record.IsPost() {
		content = record.Text
	}
	return &Post{
		URI:     uri,
		author:  accountText(author.Account()),
		content: compose.PlainText(content),
		stats:   compose.PlainText(fmt.Sprintf(" %d    %d   ♥ %d", replies, reposts, likes)),
	}
}

func accountText(a bsky.Account) compose.Text {
	spans := []compose.Span{compose.Styled(a.Name, boldStyle)}
	if a.OptName != "" {
		spans = append(spans, compose.Raw("  "), compose.Styled(a.OptName, handleStyle))
	}
	return compose.NewText(spans...)
}

func (p *Post) Store(area compose.Rect, s *compose.Store) {
	if p.reposted {
		banner := s.BottomSpace(area)
		p.repostedBy.Store(banner.WithHeight(min(banner.Height, 1)), s)
	}
	compose.NewBlock().
		Padding(compose.PadBottom(1)).
		WrapChild(p.author).
		FitVertical().
		Store(s.BottomSpace(area), s)
	p.content.Store(s.BottomSpace(area), s)
	if p.embed != nil {
		p.embed.Store(s.BottomSpace(area), s)
	}
	compose.NewBlock().
		Padding(compose.PadTop(1)).
		WrapChild(p.stats).
		FitVertical().
		Store(s.BottomSpace(area), s)
}

// Embed is the attachment of a post: media, a quoted record, both, or a
// kind this client cannot show.
type Embed struct {
	external *externalCard
	images   []compose.Text
	record   *embeddedRecord
	unknown  bool
}

type externalCard struct {
	title, description, uri compose.Text
}

type recordKind int

const (
	recordUnknown recordKind = iota
	recordNotFound
	recordBlocked
	recordPost
)

type embeddedRecord struct {
	kind recordKind
	post *Post
}

// NewEmbed builds the widget for an embed view.
func NewEmbed(e *bsky.Embed) *Embed {
	switch e.Type {
	case bsky.TypeEmbedImages, bsky.TypeEmbedExternal:
		w := &Embed{}
		w.setMedia(e)
		return w
	case bsky.TypeEmbedRecord:
		return &Embed{record: newEmbeddedRecord(e.Record)}
	case bsky.TypeEmbedRecordWithMedia:
		if e.Record == nil || e.Record.Type == "" {
			return &Embed{unknown: true}
		}
		w := &Embed{record: newEmbeddedRecord(e.Record)}
		if e.Media != nil {
			w.setMedia(e.Media)
		}
		return w
	default:
		return &Embed{unknown: true}
	}
}

func (w *Embed) setMedia(e *bsky.Embed) {
	switch e.Type {
	case bsky.TypeEmbedExternal:
		w.external = &externalCard{
			title:       compose.StyledText(e.External.Title, boldStyle).Align(compose.AlignCenter),
			description: compose.PlainText(e.External.Description),
			uri:         compose.StyledText(e.External.URI, dimStyle).IgnoreIfEmpty(false),
		}
	case bsky.TypeEmbedImages:
		for _, img := range e.Images {
			w.images = append(w.images, compose.NewText(compose.Styled("  ", markerStyle), compose.Raw(img.Alt)))
		}
	}
}

func newEmbeddedRecord(r *bsky.EmbeddedRecord) *embeddedRecord {
	if r == nil {
		return &embeddedRecord{}
	}
	switch r.Type {
	case bsky.TypeEmbedViewNotFound:
		return &embeddedRecord{kind: recordNotFound}
	case bsky.TypeEmbedViewBlocked:
		return &embeddedRecord{kind: recordBlocked}
	case bsky.TypeEmbedViewRecord:
		if r.Post != nil {
			return &embeddedRecord{kind: recordPost, post: newQuotedPost(r.Post)}
		}
	}
	return &embeddedRecord{}
}

// embedBlock frames every embed.
func embedBlock() compose.Block {
	return compose.Bordered().
		BorderSet(compose.RoundedBorder).
		BorderStyle(dimStyle).
		Padding(compose.PadHorizontal(1))
}

func (w *Embed) Store(area compose.Rect, s *compose.Store) {
	if w.unknown {
		embedBlock().WrapChild(compose.PlainText(unimplemented)).FitVertical().Store(area, s)
		return
	}
	w.storeMedia(area, s)
	if w.record != nil {
		w.record.Store(s.BottomSpace(area), s)
	}
}

func (w *Embed) storeMedia(area compose.Rect, s *compose.Store) {
	if ext := w.external; ext != nil {
		embedBlock().Wrap(func(inner compose.Rect, s *compose.Store) {
			compose.NewBlock().
				Borders(compose.BorderBottom).
				BorderSet(compose.OneEighthWideBorder).
				WrapChild(ext.title).
				FitAll().
				Store(limitHeight(s.BottomSpace(inner), 3), s)
			compose.NewBlock().
				Padding(compose.PadBottom(1)).
				WrapChild(ext.description).
				FitVertical().
				Store(limitHeight(s.BottomSpace(inner), 3), s)
			ext.uri.Store(limitHeight(s.BottomSpace(inner), 1), s)
		}).FitVertical().Store(area, s)
	}
	for _, alt := range w.images {
		embedBlock().WrapChild(alt).FitVertical().Store(s.BottomSpace(area), s)
	}
}

func (r *embeddedRecord) Store(area compose.Rect, s *compose.Store) {
	var child compose.Storeable
	switch r.kind {
	case recordPost:
		child = r.post
	case recordNotFound:
		child = compose.PlainText("  Not Found")
	case recordBlocked:
		child = compose.PlainText("  Blocked")
	default:
		child = compose.PlainText(unimplemented)
	}
	embedBlock().WrapChild(child).FitVertical().Store(area, s)
}

func limitHeight(r compose.Rect, h int) compose.Rect {
	return r.WithHeight(min(r.Height, h))
}

// Posts is the scrollable home timeline.
type Posts struct {
	scroller
	posts []*Post
	seen  map[string]bool
}

// NewPosts returns an empty timeline.
func NewPosts() *Posts {
	return &Posts{seen: make(map[string]bool)}
}

// Append adds older entries at the bottom, skipping posts already shown.
func (p *Posts) Append(feed ...bsky.FeedViewPost) {
	for _, fv := range feed {
		key := fv.Post.URI
		if by, ok := fv.RepostedBy(); ok {
			key += "#" + by.DID
		}
		if key != "" && p.seen[key] {
			continue
		}
		p.seen[key] = true
		p.posts = append(p.posts, NewPost(fv))
	}
}

// Len is the number of posts held.
func (p *Posts) Len() int { return len(p.posts) }

// ClampToEnd keeps the last post from scrolling out of view.
func (p *Posts) ClampToEnd() { p.clampToEnd(len(p.posts)) }

func (p *Posts) Render(area compose.Rect, buf *compose.Buffer) {
	p.render(area, buf, len(p.posts), func(i int) compose.Box {
		return compose.NewBlock().
			Borders(compose.BorderBottom).
			BorderStyle(accentDimStyle).
			WrapChild(p.posts[i]).
			FitVertical()
	})
}
