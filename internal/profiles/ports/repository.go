package ports

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/profiles/domain"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

type ListFilter struct {
	// Query matches username or email, case-insensitively.
	Query string
	Page  pagination.Request
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	// UsernameTaken compares case-insensitively and ignores excludeID's own row.
	UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
	// SaveOwn upserts the self-editable fields and the email; role is never written.
	SaveOwn(ctx context.Context, p *domain.Profile) error
	// SaveManaged upserts every field a superadmin may change, including role.
	SaveManaged(ctx context.Context, p *domain.Profile) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Profile, int, error)
	// RevokeSessions upserts sessions_revoked_at for the identity.
	RevokeSessions(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AuthAdmin is the auth provider's administrative API.
type AuthAdmin interface {
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
}

// ProviderError is a non-2xx answer from the auth provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// ImageStore puts files in public object storage.
type ImageStore interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	// Delete removes the object behind a public URL it previously returned.
	Delete(ctx context.Context, publicURL string) error
}

// IdentityInvalidator drops cached identities for a user.
type IdentityInvalidator interface {
	InvalidateUser(id uuid.UUID)
}
