package bsky

import (
	"encoding/json"
	"strings"

	"skyfeed/internal/jsonutil"
)

// Lexicon type identifiers of the union members this client understands.
const (
	TypePost                 = "app.bsky.feed.post"
	TypeReasonRepost         = "app.bsky.feed.defs#reasonRepost"
	TypeEmbedImages          = "app.bsky.embed.images#view"
	TypeEmbedExternal        = "app.bsky.embed.external#view"
	TypeEmbedRecord          = "app.bsky.embed.record#view"
	TypeEmbedRecordWithMedia = "app.bsky.embed.recordWithMedia#view"
	TypeEmbedViewRecord      = "app.bsky.embed.record#viewRecord"
	TypeEmbedViewNotFound    = "app.bsky.embed.record#viewNotFound"
	TypeEmbedViewBlocked     = "app.bsky.embed.record#viewBlocked"
)

// Profile is the basic view of an account.
type Profile struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Account is how a profile is shown: a primary name and, when the account
// has a display name, the "@handle" as a secondary name.
type Account struct {
	Name    string
	OptName string
}

// Account returns the names to show for p.
func (p Profile) Account() Account {
	handle := "@" + p.Handle
	if strings.TrimSpace(p.DisplayName) == "" {
		return Account{Name: handle}
	}
	return Account{Name: p.DisplayName, OptName: handle}
}

// Record is a decoded repository record. Only posts are decoded into fields;
// other record types keep their "$type".
type Record struct {
	Type      string `json:"$type"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// IsPost reports whether the record is an app.bsky.feed.post.
func (r Record) IsPost() bool { return r.Type == TypePost }

// PostView is a post as hydrated by the AppView.
type PostView struct {
	URI         string  `json:"uri"`
	CID         string  `json:"cid"`
	Author      Profile `json:"author"`
	Record      Record  `json:"record"`
	Embed       *Embed  `json:"embed,omitempty"`
	ReplyCount  int     `json:"replyCount"`
	RepostCount int     `json:"repostCount"`
	LikeCount   int     `json:"likeCount"`
	IndexedAt   string  `json:"indexedAt"`
}

// Reason explains why a post shows up in a feed.
type Reason struct {
	Type string  `json:"$type"`
	By   Profile `json:"by"`
}

// FeedViewPost is one timeline entry.
type FeedViewPost struct {
	Post   PostView `json:"post"`
	Reason *Reason  `json:"reason,omitempty"`
}

// RepostedBy returns who reposted the entry into the feed, if anyone.
func (f FeedViewPost) RepostedBy() (Profile, bool) {
	if f.Reason == nil || f.Reason.Type != TypeReasonRepost {
		return Profile{}, false
	}
	return f.Reason.By, true
}

// Image is one picture of an images embed.
type Image struct {
	Thumb    string `json:"thumb"`
	Fullsize string `json:"fullsize"`
	Alt      string `json:"alt"`
}

// External is a link card.
type External struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Embed is the union of embed views. Type selects which fields are set;
// unknown types leave everything else empty.
type Embed struct {
	Type     string
	Images   []Image
	External *External
	// Record is set for record and record-with-media embeds.
	Record   *EmbeddedRecord
	// Media is set for record-with-media embeds.
	Media    *Embed
}

func (e *Embed) UnmarshalJSON(data []byte) error {
	*e = Embed{Type: jsonutil.TypeOf(data)}
	switch e.Type {
	case TypeEmbedImages:
		var v struct {
			Images []Image `json:"images"`
		}
		if err := jsonutil.UnmarshalWithContext(data, &v, "decode images embed"); err != nil {
			return err
		}
		e.Images = v.Images
	case TypeEmbedExternal:
		var v struct {
			External External `json:"external"`
		}
		if err := jsonutil.UnmarshalWithContext(data, &v, "decode external embed"); err != nil {
			return err
		}
		e.External = &v.External
	case TypeEmbedRecord:
		var v struct {
			Record EmbeddedRecord `json:"record"`
		}
		if err := jsonutil.UnmarshalWithContext(data, &v, "decode record embed"); err != nil {
			return err
		}
		e.Record = &v.Record
	case TypeEmbedRecordWithMedia:
		var v struct {
			Record struct {
				Record EmbeddedRecord `json:"record"`
			} `json:"record"`
			Media Embed `json:"media"`
		}
		if err := jsonutil.UnmarshalWithContext(data, &v, "decode record with media embed"); err != nil {
			return err
		}
		e.Record = &v.Record.Record
		e.Media = &v.Media
	}
	return nil
}

// EmbeddedRecord is the union of record views inside a record embed.
type EmbeddedRecord struct {
	Type string
	// Post is set when Type is TypeEmbedViewRecord and the value is a post.
	Post *QuotedPost
}

// QuotedPost is a post shown inside another post.
type QuotedPost struct {
	URI         string  `json:"uri"`
	Author      Profile `json:"author"`
	Value       Record  `json:"value"`
	Embeds      []Embed `json:"embeds,omitempty"`
	ReplyCount  int     `json:"replyCount"`
	RepostCount int     `json:"repostCount"`
	LikeCount   int     `json:"likeCount"`
}

func (r *EmbeddedRecord) UnmarshalJSON(data []byte) error {
	*r = EmbeddedRecord{Type: jsonutil.TypeOf(data)}
	if r.Type != TypeEmbedViewRecord {
		return nil
	}
	var q QuotedPost
	if err := jsonutil.UnmarshalWithContext(data, &q, "decode embedded record"); err != nil {
		return err
	}
	r.Post = &q
	return nil
}

// Notification is one entry of the notification list.
type Notification struct {
	URI           string          `json:"uri"`
	CID           string          `json:"cid"`
	Author        Profile         `json:"author"`
	Reason        string          `json:"reason"`
	ReasonSubject string          `json:"reasonSubject,omitempty"`
	Record        json.RawMessage `json:"record"`
	IsRead        bool            `json:"isRead"`
	IndexedAt     string          `json:"indexedAt"`
}

// Notification reasons.
const (
	ReasonLike    = "like"
	ReasonRepost  = "repost"
	ReasonFollow  = "follow"
	ReasonMention = "mention"
	ReasonReply   = "reply"
	ReasonQuote   = "quote"
)

// Post decodes the notification's record when it is a post.
func (n Notification) Post() (Record, bool) {
	if jsonutil.IsNull(n.Record) || jsonutil.TypeOf(n.Record) != TypePost {
		return Record{}, false
	}
	var r Record
	if jsonutil.UnmarshalWithContext(n.Record, &r, "decode notification record") != nil {
		return Record{}, false
	}
	return r, true
}
