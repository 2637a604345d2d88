package application

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/profiles/domain"
	"github.com/philly/inkwell/internal/profiles/ports"
)

// AdminService backs the superadmin user management endpoints.
type AdminService struct {
	repo        ports.ProfileRepository
	authAdmin   ports.AuthAdmin
	invalidator ports.IdentityInvalidator
	images      ports.ImageStore
	logger      logger.Logger
	now         func() time.Time
}

func NewAdminService(
	repo ports.ProfileRepository,
	authAdmin ports.AuthAdmin,
	invalidator ports.IdentityInvalidator,
	images ports.ImageStore,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		repo:        repo,
		authAdmin:   authAdmin,
		invalidator: invalidator,
		images:      images,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, actor *authz.Principal, filter ports.ListFilter) (pagination.Envelope[*domain.Profile], error) {
	if err := authzapp.Check(actor, authz.Superadmin()); err != nil {
		return pagination.Envelope[*domain.Profile]{}, err
	}
	filter.Query = strings.TrimSpace(filter.Query)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "failed to list users", "error", err)
		return pagination.Envelope[*domain.Profile]{}, errInternal.WithInner(err)
	}
	return pagination.NewEnvelope(items, total, filter.Page), nil
}

// AdminUpdateParams carries optional changes; nil fields are left as stored.
type AdminUpdateParams struct {
	UserID     uuid.UUID
	Username   *string
	Name       *string
	Email      *string
	ProfilePic *string
	Role       *string
}

// UpdateUser changes the email at the provider first, then upserts the profile.
func (s *AdminService) UpdateUser(ctx context.Context, actor *authz.Principal, params AdminUpdateParams) (*domain.Profile, error) {
	if err := authzapp.Check(actor, authz.Superadmin()); err != nil {
		return nil, err
	}
	if params.UserID == uuid.Nil {
		return nil, ErrInvalidProfileData.WithMessage("userId is required")
	}

	current, err := s.repo.FindByID(ctx, params.UserID)
	switch {
	case errors.Is(err, ports.ErrProfileNotFound):
		current = domain.DefaultProfile(params.UserID, "")
	case err != nil:
		s.logger.Error(ctx, "failed to load profile", "user_id", params.UserID, "error", err)
		return nil, errInternal.WithInner(err)
	}
	oldPic := current.AvatarURL()
	next := *current

	if params.Role != nil {
		role, err := authz.ParseRole(*params.Role)
		if err != nil {
			return nil, ErrInvalidRole
		}
		if params.UserID == actor.ID && role != authz.RoleSuperadmin {
			return nil, ErrCannotDemoteSelf
		}
		next.Role = role
	}
	if params.Username != nil {
		if err := next.SetUsername(*params.Username); err != nil {
			return nil, ErrInvalidUsername
		}
		if err := ensureUsernameFree(ctx, s.repo, next.Username, params.UserID); err != nil {
			return nil, err
		}
	}
	if params.Name != nil {
		if err := next.SetName(*params.Name); err != nil {
			return nil, ErrInvalidProfileData.WithMessage(err.Error())
		}
	}
	next.SetProfilePic(params.ProfilePic)

	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
			return nil, ErrInvalidEmail
		}
		if !strings.EqualFold(email, current.Email) {
			if err := s.authAdmin.UpdateEmail(ctx, params.UserID, email); err != nil {
				return nil, s.providerError(ctx, "update email", params.UserID, err)
			}
		}
		next.Email = email
	}

	if err := s.repo.SaveManaged(ctx, &next); err != nil {
		if errors.Is(err, ports.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error(ctx, "failed to save managed profile", "user_id", params.UserID, "error", err)
		return nil, errInternal.WithInner(err)
	}
	if oldPic != "" && oldPic != next.AvatarURL() {
		removeImage(ctx, s.images, s.logger, oldPic)
	}

	s.logger.Info(ctx, "user updated by superadmin",
		"actor_id", actor.ID,
		"user_id", params.UserID,
		"role", next.Role,
	)
	return &next, nil
}

// ResetPassword sets a new password at the provider and revokes every
// session issued before now.
func (s *AdminService) ResetPassword(ctx context.Context, actor *authz.Principal, userID uuid.UUID, password string) error {
	if err := authzapp.Check(actor, authz.Superadmin()); err != nil {
		return err
	}
	if userID == uuid.Nil {
		return ErrInvalidProfileData.WithMessage("userId is required")
	}
	if err := domain.ValidatePassword(password); err != nil {
		return ErrPasswordTooShort
	}

	if err := s.authAdmin.UpdatePassword(ctx, userID, password); err != nil {
		return s.providerError(ctx, "update password", userID, err)
	}
	if err := s.repo.RevokeSessions(ctx, userID, s.now()); err != nil {
		s.logger.Error(ctx, "password changed but session revocation failed", "user_id", userID, "error", err)
		return errInternal.WithInner(err)
	}
	s.invalidator.InvalidateUser(userID)

	s.logger.Info(ctx, "password reset by superadmin", "actor_id", actor.ID, "user_id", userID)
	return nil
}

// providerError passes 4xx messages through as 400 and hides the rest.
func (s *AdminService) providerError(ctx context.Context, op string, userID uuid.UUID, err error) error {
	var perr *ports.ProviderError
	if errors.As(err, &perr) && perr.Status >= http.StatusBadRequest && perr.Status < http.StatusInternalServerError {
		s.logger.Warn(ctx, "auth provider rejected request", "op", op, "user_id", userID, "status", perr.Status)
		msg := perr.Message
		if msg == "" {
			msg = ErrProviderRejected.Message
		}
		return ErrProviderRejected.WithMessage(msg).WithInner(err)
	}
	s.logger.Error(ctx, "auth provider request failed", "op", op, "user_id", userID, "error", err)
	return ErrProviderUnavailable.WithInner(err)
}
