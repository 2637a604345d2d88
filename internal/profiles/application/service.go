package application

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/upload"
	"github.com/philly/inkwell/internal/profiles/domain"
	"github.com/philly/inkwell/internal/profiles/ports"
)

// ProfileService serves the caller's own profile.
type ProfileService struct {
	repo   ports.ProfileRepository
	images ports.ImageStore
	logger logger.Logger
}

func NewProfileService(repo ports.ProfileRepository, images ports.ImageStore, logger logger.Logger) *ProfileService {
	return &ProfileService{repo: repo, images: images, logger: logger}
}

// Get returns the stored profile, or a default view when none exists yet.
func (s *ProfileService) Get(ctx context.Context, actor *authz.Principal) (*domain.Profile, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, actor.ID)
	if errors.Is(err, ports.ErrProfileNotFound) {
		p = domain.DefaultProfile(actor.ID, actor.Email)
		p.Role = actor.Role
		return p, nil
	}
	if err != nil {
		s.logger.Error(ctx, "failed to load profile", "user_id", actor.ID, "error", err)
		return nil, errInternal.WithInner(err)
	}
	return p, nil
}

type UpdateProfileParams struct {
	Username   string
	Name       string
	ProfilePic *string
}

// Update upserts username, name and picture. The role is never touched.
func (s *ProfileService) Update(ctx context.Context, actor *authz.Principal, params UpdateProfileParams) (*domain.Profile, error) {
	current, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}
	oldPic := current.AvatarURL()

	next := *current
	if actor.Email != "" {
		next.Email = actor.Email
	}
	if err := next.SetUsername(params.Username); err != nil {
		return nil, ErrInvalidUsername
	}
	if err := next.SetName(params.Name); err != nil {
		return nil, ErrInvalidProfileData.WithMessage(err.Error())
	}
	next.SetProfilePic(params.ProfilePic)

	if err := ensureUsernameFree(ctx, s.repo, next.Username, actor.ID); err != nil {
		return nil, err
	}
	if err := s.repo.SaveOwn(ctx, &next); err != nil {
		if errors.Is(err, ports.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error(ctx, "failed to save profile", "user_id", actor.ID, "error", err)
		return nil, errInternal.WithInner(err)
	}

	if oldPic != "" && oldPic != next.AvatarURL() {
		removeImage(ctx, s.images, s.logger, oldPic)
	}

	s.logger.Info(ctx, "profile updated", "user_id", actor.ID)
	return &next, nil
}

// UploadAvatar stores an image and returns its public URL. The profile
// keeps its old picture until the URL is saved with Update.
func (s *ProfileService) UploadAvatar(ctx context.Context, actor *authz.Principal, file io.Reader) (string, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return "", err
	}
	img, err := upload.ReadImage(file)
	if err != nil {
		return "", ErrInvalidImage.WithMessage(err.Error())
	}
	url, err := s.images.Upload(ctx, upload.ObjectPath("avatars", actor.ID, img.Ext), img.ContentType, img.Reader())
	if err != nil {
		s.logger.Error(ctx, "avatar upload failed", "user_id", actor.ID, "error", err)
		return "", ErrStorageFailure.WithInner(err)
	}
	return url, nil
}

func ensureUsernameFree(ctx context.Context, repo ports.ProfileRepository, username string, self uuid.UUID) error {
	taken, err := repo.UsernameTaken(ctx, username, self)
	if err != nil {
		return errInternal.WithInner(err)
	}
	if taken {
		return ErrUsernameTaken
	}
	return nil
}

// removeImage is best effort: failures are logged and never surface.
func removeImage(ctx context.Context, images ports.ImageStore, log logger.Logger, url string) {
	if err := images.Delete(ctx, url); err != nil {
		log.Warn(ctx, "failed to delete replaced image", "url", url, "error", err)
	}
}
