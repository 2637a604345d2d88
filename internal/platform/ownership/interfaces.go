package ownership

import (
	"context"

	"github.com/google/uuid"
)

// Resource names a kind of owned row.
type Resource string

const ResourcePosts Resource = "posts"

// Checker reports whether userID authored the row with the given id. A
// missing row is not an error; it is simply not owned.
type Checker interface {
	Owns(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

type Registry interface {
	Register(resource Resource, checker Checker)
	Owns(ctx context.Context, resource Resource, userID uuid.UUID, id int64) (bool, error)
}
