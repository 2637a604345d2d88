package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, ownerID uuid.UUID, unreadOnly bool, page pagination.Request) ([]*domain.Notification, int, error)
	CountUnread(ctx context.Context, ownerID uuid.UUID) (int, error)
	// MarkRead only touches an unread row owned by ownerID.
	MarkRead(ctx context.Context, id int64, ownerID uuid.UUID, at time.Time) (int64, error)
	MarkAllRead(ctx context.Context, ownerID uuid.UUID, at time.Time) (int64, error)
}

// ActivityRepository reads comments and likes on posts authored by ownerID,
// newest first.
type ActivityRepository interface {
	CommentsOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error)
	LikesOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error)
}

// Directory resolves display fields for a batch of ids. Missing ids are
// simply absent from the result.
type Directory interface {
	ActorsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Actor, error)
	PostTitlesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
