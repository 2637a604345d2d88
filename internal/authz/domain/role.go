package domain

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("role must be one of user, admin, superadmin")

// Role is the stored role of a profile. It is never read from token claims.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsAdmin is true for admins and superadmins.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

func (r Role) IsSuperadmin() bool {
	return r == RoleSuperadmin
}

func (r Role) String() string { return string(r) }
