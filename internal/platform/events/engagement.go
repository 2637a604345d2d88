package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/eventbus"
)

const (
	CommentCreatedTopic eventbus.Topic = "comments.created"
	LikeCreatedTopic    eventbus.Topic = "likes.created"
)

type CommentCreatedEvent struct {
	CommentID  int64
	PostID     int64
	PostAuthor uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// LikeCreatedEvent is only published when a like row was actually inserted.
type LikeCreatedEvent struct {
	PostID     int64
	PostAuthor uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}
