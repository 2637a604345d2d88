package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/eventbus"
)

const (
	PostCreatedTopic eventbus.Topic = "posts.created"
	PostUpdatedTopic eventbus.Topic = "posts.updated"
	PostDeletedTopic eventbus.Topic = "posts.deleted"
)

// PostChangedEvent is published for create, update and delete.
type PostChangedEvent struct {
	PostID     int64
	ActorID    uuid.UUID
	CategoryID int64
	// PreviousCategoryID is set on updates that moved the post.
	PreviousCategoryID int64
	OccurredAt         time.Time
}
