package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/eventbus"
)

const CategoriesChangedTopic eventbus.Topic = "categories.changed"

type CategoriesChangedEvent struct {
	ActorID    uuid.UUID
	CategoryID int64
	Action     string // created, updated, deleted
	// ReassignedTo is set when a delete moved posts to another category.
	ReassignedTo int64
	OccurredAt   time.Time
}
