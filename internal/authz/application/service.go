package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/authz/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
)

var (
	ErrAuthenticationRequired = apperror.New(
		apperror.CodeUnauthorized,
		apperror.BusinessCodeAuthenticationRequired,
		"authentication required",
		http.StatusUnauthorized,
	)
	ErrSessionRevoked = apperror.New(
		apperror.CodeUnauthorized,
		apperror.BusinessCodeSessionRevoked,
		"session has been revoked, sign in again",
		http.StatusUnauthorized,
	)
	ErrPermissionDenied = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodePermissionDenied,
		"insufficient permissions",
		http.StatusForbidden,
	)
	ErrAccessLookupFailed = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"authorization check failed",
		http.StatusInternalServerError,
	)
)

type AuthzService struct {
	repo              ports.AccessRepository
	ownershipRegistry ownership.Registry
	logger            logger.Logger
}

func NewAuthzService(
	repo ports.AccessRepository,
	ownershipRegistry ownership.Registry,
	logger logger.Logger,
) *AuthzService {
	return &AuthzService{
		repo:              repo,
		ownershipRegistry: ownershipRegistry,
		logger:            logger,
	}
}

// ResolveRole looks up the stored role, defaulting to user when the
// identity has no profile yet.
func (s *AuthzService) ResolveRole(ctx context.Context, userID uuid.UUID) (domain.Role, error) {
	access, err := s.access(ctx, userID)
	if err != nil {
		return "", err
	}
	return access.Role, nil
}

// Resolve turns an identity into a principal with a single profile lookup.
// A nil identity yields a nil principal and no error.
func (s *AuthzService) Resolve(ctx context.Context, identity *domain.Identity) (*domain.Principal, error) {
	if identity == nil {
		return nil, nil
	}
	access, err := s.access(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if access.Revokes(identity.IssuedAt) {
		return nil, ErrSessionRevoked
	}
	return &domain.Principal{Identity: *identity, Role: access.Role}, nil
}

// Authorize resolves the identity and checks req against it.
func (s *AuthzService) Authorize(ctx context.Context, identity *domain.Identity, req domain.Requirement) (*domain.Principal, error) {
	if identity == nil {
		if req.NeedsIdentity() {
			return nil, ErrAuthenticationRequired
		}
		return nil, nil
	}
	principal, err := s.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := Check(principal, req); err != nil {
		s.logger.Warn(ctx, "authorization denied", "user_id", identity.ID, "requirement", req.String())
		return nil, err
	}
	return principal, nil
}

// Check evaluates req against an already-resolved principal.
func Check(principal *domain.Principal, req domain.Requirement) error {
	if req.SatisfiedBy(principal) {
		return nil
	}
	if principal == nil {
		return ErrAuthenticationRequired
	}
	return ErrPermissionDenied
}

// Can decides resource-level actions for a resolved principal. Superadmins
// may do anything; otherwise the principal must be an admin that owns the
// resource, or for reads simply own it.
func (s *AuthzService) Can(ctx context.Context, actor *domain.Principal, resource ownership.Resource, action string, resourceID *int64) (bool, error) {
	if actor == nil {
		return false, nil
	}
	if actor.IsSuperadmin() {
		return true, nil
	}
	if resourceID == nil {
		return actor.IsAdmin(), nil
	}
	if action == "read" && actor.IsAdmin() {
		return true, nil
	}
	if action != "read" && !actor.IsAdmin() {
		return false, nil
	}

	owns, err := s.ownershipRegistry.Owns(ctx, resource, actor.ID, *resourceID)
	if err != nil {
		s.logger.Error(ctx, "ownership check failed",
			"user_id", actor.ID,
			"resource", resource,
			"resource_id", *resourceID,
			"error", err,
		)
		return false, fmt.Errorf("AuthzService.Can: %w", err)
	}
	return owns, nil
}

func (s *AuthzService) access(ctx context.Context, userID uuid.UUID) (domain.Access, error) {
	access, err := s.repo.FindAccess(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrAccessNotFound) {
			return domain.DefaultAccess(), nil
		}
		s.logger.Error(ctx, "failed to load access", "user_id", userID, "error", err)
		return domain.Access{}, ErrAccessLookupFailed.WithInner(err)
	}
	if !access.Role.IsValid() {
		access.Role = domain.RoleUser
	}
	return access, nil
}
