package application

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/ownership"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/upload"
	"github.com/philly/inkwell/internal/posts/domain"
	"github.com/philly/inkwell/internal/posts/ports"
)

var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)
	ErrInvalidPostData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidPostData,
		"invalid post data",
		http.StatusBadRequest,
	)
	ErrUnknownCategory = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeCategoryNotFound,
		"category does not exist",
		http.StatusBadRequest,
	)
	ErrNotPostOwner = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodePermissionDenied,
		"not authorized to delete this post",
		http.StatusForbidden,
	)
	ErrInvalidImage = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidImageFile,
		"invalid image file",
		http.StatusBadRequest,
	)
	ErrStorageFailure = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeStorageFailure,
		"failed to store image",
		http.StatusInternalServerError,
	)
	errInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"post operation failed",
		http.StatusInternalServerError,
	)
)

type PostsService struct {
	repo       ports.PostRepository
	categories ports.CategoryLookup
	authorizer ports.Authorizer
	images     ports.ImageStore
	eventBus   eventbus.Publisher
	logger     logger.Logger
	sanitizer  *bluemonday.Policy
}

func NewPostsService(
	repo ports.PostRepository,
	categories ports.CategoryLookup,
	authorizer ports.Authorizer,
	images ports.ImageStore,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *PostsService {
	return &PostsService{
		repo:       repo,
		categories: categories,
		authorizer: authorizer,
		images:     images,
		eventBus:   eventBus,
		logger:     logger,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

// List pages posts. Drafts are included only when an admin asks for them.
func (s *PostsService) List(ctx context.Context, viewer *authz.Principal, filter ports.ListFilter, includeDrafts bool) (pagination.Envelope[*domain.Post], error) {
	filter.PublishedOnly = !(includeDrafts && viewer.IsAdmin())

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "failed to list posts", "error", err)
		return pagination.Envelope[*domain.Post]{}, errInternal.WithInner(err)
	}
	return pagination.NewEnvelope(items, total, filter.Page), nil
}

// Get returns a post. Drafts are visible to their author and to admins;
// everyone else gets not found.
func (s *PostsService) Get(ctx context.Context, viewer *authz.Principal, id int64) (*domain.Post, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Published {
		return post, nil
	}
	if viewer.Owns(post.AuthorID) {
		return post, nil
	}
	if !viewer.IsAdmin() {
		return nil, ErrPostNotFound
	}
	ok, err := s.authorizer.Can(ctx, viewer, ownership.ResourcePosts, "read", &id)
	if err != nil {
		return nil, errInternal.WithInner(err)
	}
	if !ok {
		return nil, ErrPostNotFound
	}
	return post, nil
}

type CreatePostParams struct {
	Title       string
	Description string
	Content     string
	CategoryID  *int64
	Published   bool
	Image       *string
}

func (s *PostsService) Create(ctx context.Context, actor *authz.Principal, params CreatePostParams) (*domain.Post, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, params.CategoryID)
	if err != nil {
		return nil, err
	}

	post, err := domain.NewPost(params.Title, params.Description, s.sanitizer.Sanitize(params.Content), categoryID, actor.ID, params.Published)
	if err != nil {
		return nil, ErrInvalidPostData.WithMessage(err.Error())
	}
	post.ChangeImage(params.Image, false)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, s.translate(ctx, "create", err)
	}

	s.logger.Info(ctx, "post created", "post_id", post.ID, "author_id", actor.ID)
	s.publish(ctx, events.PostCreatedTopic, actor, post, 0)
	return post, nil
}

type UpdatePostParams struct {
	Title       string
	Description string
	Content     string
	CategoryID  *int64
	Published   bool
	Image       *string
	RemoveImage bool
}

// Update saves the row first and only then deletes a replaced image.
func (s *PostsService) Update(ctx context.Context, actor *authz.Principal, id int64, params UpdatePostParams) (*domain.Post, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return nil, err
	}
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	previousCategory := post.CategoryID

	if params.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, params.CategoryID)
		if err != nil {
			return nil, err
		}
		post.CategoryID = categoryID
	}
	if err := post.Edit(params.Title, params.Description, s.sanitizer.Sanitize(params.Content)); err != nil {
		return nil, ErrInvalidPostData.WithMessage(err.Error())
	}
	post.SetPublished(params.Published)
	orphaned := post.ChangeImage(params.Image, params.RemoveImage)

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, s.translate(ctx, "update", err)
	}
	if orphaned != "" {
		s.removeImage(ctx, orphaned)
	}

	s.publish(ctx, events.PostUpdatedTopic, actor, post, previousCategory)
	return post, nil
}

// Delete removes a post owned by the admin, or any post for a superadmin.
func (s *PostsService) Delete(ctx context.Context, actor *authz.Principal, id int64) error {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return err
	}
	post, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	canDelete, err := s.authorizer.Can(ctx, actor, ownership.ResourcePosts, "delete", &id)
	if err != nil {
		s.logger.Error(ctx, "failed to check authorization", "error", err, "actor_id", actor.ID, "post_id", id)
		return errInternal.WithInner(err)
	}
	if !canDelete {
		return ErrNotPostOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(ctx, "delete", err)
	}
	if url := post.ImageURL(); url != "" {
		s.removeImage(ctx, url)
	}

	s.logger.Info(ctx, "post deleted", "post_id", id, "actor_id", actor.ID)
	s.publish(ctx, events.PostDeletedTopic, actor, post, 0)
	return nil
}

// UploadImage stores an image for use in a post and returns its public URL.
func (s *PostsService) UploadImage(ctx context.Context, actor *authz.Principal, file io.Reader) (string, error) {
	if err := authzapp.Check(actor, authz.Admin()); err != nil {
		return "", err
	}
	img, err := upload.ReadImage(file)
	if err != nil {
		return "", ErrInvalidImage.WithMessage(err.Error())
	}
	url, err := s.images.Upload(ctx, upload.ObjectPath("posts", actor.ID, img.Ext), img.ContentType, img.Reader())
	if err != nil {
		s.logger.Error(ctx, "post image upload failed", "actor_id", actor.ID, "error", err)
		return "", ErrStorageFailure.WithInner(err)
	}
	return url, nil
}

func (s *PostsService) resolveCategory(ctx context.Context, id *int64) (int64, error) {
	if id == nil {
		general, err := s.categories.GeneralCategoryID(ctx)
		if errors.Is(err, ports.ErrCategoryNotFound) {
			return 0, ErrUnknownCategory.WithMessage("the General category does not exist")
		}
		if err != nil {
			return 0, errInternal.WithInner(err)
		}
		return general, nil
	}
	ok, err := s.categories.CategoryExists(ctx, *id)
	if err != nil {
		return 0, errInternal.WithInner(err)
	}
	if !ok {
		return 0, ErrUnknownCategory
	}
	return *id, nil
}

func (s *PostsService) find(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "find", err)
	}
	return post, nil
}

func (s *PostsService) translate(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, ports.ErrPostNotFound):
		return ErrPostNotFound
	case errors.Is(err, ports.ErrCategoryNotFound):
		return ErrUnknownCategory
	}
	s.logger.Error(ctx, "post repository failure", "op", op, "error", err)
	return errInternal.WithInner(err)
}

func (s *PostsService) removeImage(ctx context.Context, url string) {
	if err := s.images.Delete(ctx, url); err != nil {
		s.logger.Warn(ctx, "failed to delete post image", "url", url, "error", err)
	}
}

func (s *PostsService) publish(ctx context.Context, topic eventbus.Topic, actor *authz.Principal, post *domain.Post, previousCategory int64) {
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: topic,
		Payload: events.PostChangedEvent{
			PostID:             post.ID,
			ActorID:            actor.ID,
			CategoryID:         post.CategoryID,
			PreviousCategoryID: previousCategory,
			OccurredAt:         time.Now(),
		},
	})
}
