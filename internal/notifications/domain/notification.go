package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Type string

const (
	TypeComment Type = "comment"
	TypeLike    Type = "like"
)

const (
	DeletedPostTitle = "(deleted post)"
	UnknownActorName = "Unknown user"
	ExcerptLength    = 120
)

// Notification is a stored row addressed to OwnerID.
type Notification struct {
	ID        int64
	OwnerID   uuid.UUID
	ActorID   uuid.UUID
	Type      Type
	PostID    int64
	CommentID *int64
	CreatedAt time.Time
	ReadAt    *time.Time
}

func (n *Notification) IsRead() bool { return n.ReadAt != nil }

// Excerpt shortens comment content for the feed.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= ExcerptLength {
		return content
	}
	return string([]rune(content)[:ExcerptLength]) + "…"
}

// Activity is a comment or like on one of the owner's posts, read straight
// from the source tables.
type Activity struct {
	ID        int64
	Type      Type
	ActorID   uuid.UUID
	PostID    int64
	CommentID *int64
	Excerpt   string
	CreatedAt time.Time
}

type Actor struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username,omitempty"`
	Avatar   *string   `json:"avatar"`
}

// NewActor picks the display name, falling back to the username.
func NewActor(id uuid.UUID, name, username string, avatar *string) Actor {
	display := strings.TrimSpace(name)
	if display == "" {
		display = username
	}
	if display == "" {
		display = UnknownActorName
	}
	return Actor{ID: id, Name: display, Username: username, Avatar: avatar}
}

// PlaceholderActor stands in for an actor with no profile row.
func PlaceholderActor(id uuid.UUID) Actor {
	return Actor{ID: id, Name: UnknownActorName}
}

type PostRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// FeedItem is the display-ready form of a notification or an activity.
type FeedItem struct {
	ID        int64      `json:"id"`
	Type      Type       `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	Actor     Actor      `json:"actor"`
	Post      PostRef    `json:"post"`
	CommentID *int64     `json:"commentId,omitempty"`
	Excerpt   string     `json:"excerpt,omitempty"`
}

// SortNewestFirst orders by created_at DESC, then comments before likes,
// then id DESC.
func SortNewestFirst(items []FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Type != b.Type {
			return a.Type == TypeComment
		}
		return a.ID > b.ID
	})
}

// Scope selects which stored notifications a listing returns.
type Scope string

const (
	ScopeBell Scope = "bell"
	ScopeAll  Scope = "all"
)

// ParseScope maps anything but "all" to the bell scope.
func ParseScope(raw string) Scope {
	if Scope(raw) == ScopeAll {
		return ScopeAll
	}
	return ScopeBell
}

func (s Scope) UnreadOnly() bool { return s == ScopeBell }
