package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/platform/pagination"
)

var ErrPostNotFound = errors.New("post not found")

type ListFilter struct {
	// PostID nil lists across posts; only used with OrderMine.
	PostID *int64
	Order  domain.Order
	// UserID restricts to one author; set for OrderMine.
	UserID *uuid.UUID
	Page   pagination.Request
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	// List sorts by created_at then id, descending except for OrderOld.
	List(ctx context.Context, filter ListFilter) ([]*domain.Comment, int, error)
	// DeleteOwned deletes only when id and userID both match.
	DeleteOwned(ctx context.Context, id int64, userID uuid.UUID) (int64, error)
}

// PostMeta is what comments and likes need to know about a post.
type PostMeta struct {
	AuthorID  uuid.UUID
	Published bool
}

type PostLookup interface {
	PostMeta(ctx context.Context, postID int64) (PostMeta, error)
}
