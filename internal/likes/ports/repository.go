package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/philly/inkwell/internal/likes/domain"
	"github.com/philly/inkwell/internal/platform/pagination"
)

var ErrPostNotFound = errors.New("post not found")

type LikeRepository interface {
	// Insert is idempotent on (post_id, user_id); inserted reports a new row.
	Insert(ctx context.Context, postID int64, userID uuid.UUID) (inserted bool, err error)
	Remove(ctx context.Context, postID int64, userID uuid.UUID) (int64, error)
	// SyncCount recomputes posts.likes_count from the likes table and returns it.
	SyncCount(ctx context.Context, postID int64) (int, error)
	Count(ctx context.Context, postID int64) (int, error)
	Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
	// ListByUser pages the user's liked published posts, newest like first.
	ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Request) ([]*domain.LikedPost, int, error)
	WithTx(tx pgx.Tx) LikeRepository
}

type PostMeta struct {
	AuthorID  uuid.UUID
	Published bool
}

type PostLookup interface {
	PostMeta(ctx context.Context, postID int64) (PostMeta, error)
}
