package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type RequirementKind int

const (
	RequirePublic RequirementKind = iota
	RequireAuthenticated
	RequireAdmin
	RequireSuperadmin
	RequireOwner
)

// Requirement is a predicate over a principal.
type Requirement struct {
	Kind    RequirementKind
	OwnerID uuid.UUID
}

func Public() Requirement        { return Requirement{Kind: RequirePublic} }
func Authenticated() Requirement { return Requirement{Kind: RequireAuthenticated} }
func Admin() Requirement         { return Requirement{Kind: RequireAdmin} }
func Superadmin() Requirement    { return Requirement{Kind: RequireSuperadmin} }

func Owner(ownerID uuid.UUID) Requirement {
	return Requirement{Kind: RequireOwner, OwnerID: ownerID}
}

// NeedsIdentity is false only for public.
func (r Requirement) NeedsIdentity() bool {
	return r.Kind != RequirePublic
}

// SatisfiedBy evaluates r against p. A nil principal only satisfies public.
func (r Requirement) SatisfiedBy(p *Principal) bool {
	switch r.Kind {
	case RequirePublic:
		return true
	case RequireAuthenticated:
		return p != nil
	case RequireAdmin:
		return p.IsAdmin()
	case RequireSuperadmin:
		return p.IsSuperadmin()
	case RequireOwner:
		return p.Owns(r.OwnerID)
	}
	return false
}

func (r Requirement) String() string {
	switch r.Kind {
	case RequirePublic:
		return "public"
	case RequireAuthenticated:
		return "authenticated"
	case RequireAdmin:
		return "role:admin"
	case RequireSuperadmin:
		return "role:superadmin"
	case RequireOwner:
		return fmt.Sprintf("owner(%s)", r.OwnerID)
	}
	return "unknown"
}
