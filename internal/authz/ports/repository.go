package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/authz/domain"
)

var ErrAccessNotFound = errors.New("no profile for identity")

// AccessRepository reads the role and revocation marker of an identity.
type AccessRepository interface {
	FindAccess(ctx context.Context, userID uuid.UUID) (domain.Access, error)
}
