package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a verified principal issued by the auth provider.
type Identity struct {
	ID        uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Access is what the profile store knows about an identity.
type Access struct {
	Role              Role
	SessionsRevokedAt *time.Time
}

// DefaultAccess applies to identities without a profile row.
func DefaultAccess() Access {
	return Access{Role: RoleUser}
}

// Revokes reports whether a token issued at iat predates the last revocation.
func (a Access) Revokes(iat time.Time) bool {
	if a.SessionsRevokedAt == nil {
		return false
	}
	if iat.IsZero() {
		return true
	}
	return iat.Before(a.SessionsRevokedAt.Truncate(time.Second))
}

// Principal is an identity with its resolved role.
type Principal struct {
	Identity
	Role Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}

func (p *Principal) IsSuperadmin() bool {
	return p != nil && p.Role.IsSuperadmin()
}

func (p *Principal) Owns(ownerID uuid.UUID) bool {
	return p != nil && p.ID == ownerID
}

// UserID returns uuid.Nil for anonymous callers.
func (p *Principal) UserID() uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return p.ID
}
