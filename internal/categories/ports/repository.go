package ports

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/philly/inkwell/internal/categories/domain"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
	// ErrCategoryInUse is returned when posts still reference a category being deleted.
	ErrCategoryInUse = errors.New("category still has posts")
)

type CategoryRepository interface {
	// List returns every category with its post count, General first then by name.
	List(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	// FindGeneral matches the name case-insensitively.
	FindGeneral(ctx context.Context) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Rename(ctx context.Context, id int64, name string) error
	// ReassignPosts moves every post of from into to and returns how many moved.
	ReassignPosts(ctx context.Context, from, to int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	// EnsureGeneral inserts General when missing; created is false if it existed.
	EnsureGeneral(ctx context.Context) (created bool, err error)
	WithTx(tx pgx.Tx) CategoryRepository
}

// CategoryCache holds the rendered category list between writes.
type CategoryCache interface {
	Get(ctx context.Context) ([]*domain.Category, bool)
	Set(ctx context.Context, categories []*domain.Category)
	Invalidate(ctx context.Context)
}
