package ports

import (
	"context"
	"io"

	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/ownership"
)

// Authorizer decides resource-level actions for an already-resolved principal.
type Authorizer interface {
	Can(ctx context.Context, actor *authz.Principal, resource ownership.Resource, action string, resourceID *int64) (bool, error)
}

type ImageStore interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
