package application

import (
	"context"
	"errors"
	"net/http"
	"time"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/likes/domain"
	"github.com/philly/inkwell/internal/likes/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/eventbus"
	"github.com/philly/inkwell/internal/platform/events"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
)

var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)
	errInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"like operation failed",
		http.StatusInternalServerError,
	)
)

type LikesService struct {
	repo      ports.LikeRepository
	posts     ports.PostLookup
	txManager postgres.TransactionManager
	eventBus  eventbus.Publisher
	logger    logger.Logger
}

func NewLikesService(
	repo ports.LikeRepository,
	posts ports.PostLookup,
	txManager postgres.TransactionManager,
	eventBus eventbus.Publisher,
	logger logger.Logger,
) *LikesService {
	return &LikesService{
		repo:      repo,
		posts:     posts,
		txManager: txManager,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Status returns the count and, for an authenticated viewer, whether they
// like the post.
func (s *LikesService) Status(ctx context.Context, viewer *authz.Principal, postID int64) (domain.State, error) {
	if _, err := s.publishedPost(ctx, postID); err != nil {
		return domain.State{}, err
	}
	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return domain.State{}, s.internal(ctx, "count", postID, err)
	}
	state := domain.State{Count: count}
	if viewer != nil {
		state.Liked, err = s.repo.Exists(ctx, postID, viewer.ID)
		if err != nil {
			return domain.State{}, s.internal(ctx, "exists", postID, err)
		}
	}
	return state, nil
}

// Like is idempotent: a second like neither errors nor changes the count.
func (s *LikesService) Like(ctx context.Context, actor *authz.Principal, postID int64) (domain.State, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return domain.State{}, err
	}
	meta, err := s.publishedPost(ctx, postID)
	if err != nil {
		return domain.State{}, err
	}

	var inserted bool
	var count int
	err = postgres.RunInTx(ctx, s.txManager, func(tx postgres.Transaction) error {
		txRepo := s.repo.WithTx(tx.Tx())
		var err error
		if inserted, err = txRepo.Insert(ctx, postID, actor.ID); err != nil {
			return err
		}
		count, err = txRepo.SyncCount(ctx, postID)
		return err
	})
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return domain.State{}, ErrPostNotFound
		}
		return domain.State{}, s.internal(ctx, "like", postID, err)
	}

	if inserted && meta.AuthorID != actor.ID {
		s.eventBus.Publish(ctx, eventbus.Event{
			Topic: events.LikeCreatedTopic,
			Payload: events.LikeCreatedEvent{
				PostID:     postID,
				PostAuthor: meta.AuthorID,
				ActorID:    actor.ID,
				OccurredAt: time.Now(),
			},
		})
	}
	return domain.State{Liked: true, Count: count}, nil
}

// Unlike succeeds whether or not a like existed.
func (s *LikesService) Unlike(ctx context.Context, actor *authz.Principal, postID int64) (domain.State, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return domain.State{}, err
	}

	var count int
	err := postgres.RunInTx(ctx, s.txManager, func(tx postgres.Transaction) error {
		txRepo := s.repo.WithTx(tx.Tx())
		if _, err := txRepo.Remove(ctx, postID, actor.ID); err != nil {
			return err
		}
		var err error
		count, err = txRepo.SyncCount(ctx, postID)
		return err
	})
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return domain.State{}, ErrPostNotFound
		}
		return domain.State{}, s.internal(ctx, "unlike", postID, err)
	}
	return domain.State{Liked: false, Count: count}, nil
}

func (s *LikesService) ListMine(ctx context.Context, actor *authz.Principal, page pagination.Request) (pagination.Envelope[*domain.LikedPost], error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return pagination.Envelope[*domain.LikedPost]{}, err
	}
	items, total, err := s.repo.ListByUser(ctx, actor.ID, page)
	if err != nil {
		return pagination.Envelope[*domain.LikedPost]{}, s.internal(ctx, "list", 0, err)
	}
	return pagination.NewEnvelope(items, total, page), nil
}

func (s *LikesService) publishedPost(ctx context.Context, postID int64) (ports.PostMeta, error) {
	meta, err := s.posts.PostMeta(ctx, postID)
	if errors.Is(err, ports.ErrPostNotFound) || (err == nil && !meta.Published) {
		return meta, ErrPostNotFound
	}
	if err != nil {
		return meta, s.internal(ctx, "load post", postID, err)
	}
	return meta, nil
}

func (s *LikesService) internal(ctx context.Context, op string, postID int64, err error) error {
	s.logger.Error(ctx, "like operation failed", "op", op, "post_id", postID, "error", err)
	return errInternal.WithInner(err)
}
