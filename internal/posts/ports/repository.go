package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/posts/domain"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ListFilter is built once at the HTTP boundary.
type ListFilter struct {
	// Query is a trimmed, case-insensitive title substring; empty means no filter.
	Query string
	// CategoryID nil means every category.
	CategoryID    *int64
	AuthorID      *uuid.UUID
	PublishedOnly bool
	Page          pagination.Request
}

type PostRepository interface {
	// Create sets ID and timestamps on p.
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id int64) error
	// List orders by created_at DESC, id DESC and returns the page plus the total.
	List(ctx context.Context, filter ListFilter) ([]*domain.Post, int, error)
	GetPostAuthor(ctx context.Context, id int64) (uuid.UUID, error)
}

// CategoryLookup resolves category references for posts.
type CategoryLookup interface {
	CategoryExists(ctx context.Context, id int64) (bool, error)
	GeneralCategoryID(ctx context.Context) (int64, error)
}
