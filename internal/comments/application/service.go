package application

import (
	"context"
	"errors"
	"net/http"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/comments/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
)

var (
	ErrContentEmpty = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeCommentEmpty,
		"comment cannot be empty",
		http.StatusBadRequest,
	)
	ErrContentTooLong = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeCommentTooLong,
		"comment must not exceed 500 characters",
		http.StatusBadRequest,
	)
	ErrPostRequired = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"postId is required",
		http.StatusBadRequest,
	)
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)
	errInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"comment operation failed",
		http.StatusInternalServerError,
	)
)

type CommentsService struct {
	repo     ports.CommentRepository
	posts    ports.PostLookup
	eventBus eventbus.Publisher
	logger   logger.Logger
}

func NewCommentsService(
	repo ports.CommentRepository,
	posts ports.PostLookup,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *CommentsService {
	return &CommentsService{repo: repo, posts: posts, eventBus: eventBus, logger: logger}
}

// List pages comments. OrderMine needs a principal and lists only the
// caller's comments, newest first.
func (s *CommentsService) List(ctx context.Context, viewer *authz.Principal, filter ports.ListFilter) (pagination.Envelope[*domain.Comment], error) {
	var empty pagination.Envelope[*domain.Comment]

	if filter.Order == domain.OrderMine {
		if err := authzapp.Check(viewer, authz.Authenticated()); err != nil {
			return empty, err
		}
		uid := viewer.ID
		filter.UserID = &uid
	} else {
		filter.UserID = nil
		if filter.PostID == nil {
			return empty, ErrPostRequired
		}
	}
	if filter.PostID != nil {
		if _, err := s.visiblePost(ctx, viewer, *filter.PostID); err != nil {
			return empty, err
		}
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "failed to list comments", "error", err)
		return empty, errInternal.WithInner(err)
	}
	return pagination.NewEnvelope(items, total, filter.Page), nil
}

func (s *CommentsService) Create(ctx context.Context, actor *authz.Principal, postID int64, rawContent string) (*domain.Comment, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return nil, err
	}
	content, err := domain.NormalizeContent(rawContent)
	switch {
	case errors.Is(err, domain.ErrContentEmpty):
		return nil, ErrContentEmpty
	case errors.Is(err, domain.ErrContentTooLong):
		return nil, ErrContentTooLong
	}

	meta, err := s.visiblePost(ctx, actor, postID)
	if err != nil {
		return nil, err
	}

	c := &domain.Comment{PostID: postID, UserID: actor.ID, Content: content}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to create comment", "post_id", postID, "error", err)
		return nil, errInternal.WithInner(err)
	}

	if meta.AuthorID != actor.ID {
		s.eventBus.Publish(ctx, eventbus.Event{
			Topic: events.CommentCreatedTopic,
			Payload: events.CommentCreatedEvent{
				CommentID:  c.ID,
				PostID:     postID,
				PostAuthor: meta.AuthorID,
				ActorID:    actor.ID,
				OccurredAt: c.CreatedAt,
			},
		})
	}
	return c, nil
}

// Delete removes the caller's own comment. A missing or foreign comment
// deletes nothing and is not an error.
func (s *CommentsService) Delete(ctx context.Context, actor *authz.Principal, id int64) (int64, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return 0, err
	}
	n, err := s.repo.DeleteOwned(ctx, id, actor.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete comment", "comment_id", id, "error", err)
		return 0, errInternal.WithInner(err)
	}
	if n == 0 {
		s.logger.Debug(ctx, "comment delete matched nothing", "comment_id", id, "user_id", actor.ID)
	}
	return n, nil
}

// visiblePost hides drafts from everyone but admins and the author.
func (s *CommentsService) visiblePost(ctx context.Context, viewer *authz.Principal, postID int64) (ports.PostMeta, error) {
	meta, err := s.posts.PostMeta(ctx, postID)
	if errors.Is(err, ports.ErrPostNotFound) {
		return meta, ErrPostNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "failed to load post", "post_id", postID, "error", err)
		return meta, errInternal.WithInner(err)
	}
	if !meta.Published && !viewer.IsAdmin() && !viewer.Owns(meta.AuthorID) {
		return meta, ErrPostNotFound
	}
	return meta, nil
}
