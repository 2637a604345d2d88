package application

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	authzapp "github.com/philly/inkwell/internal/authz/application"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/notifications/ports"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
	"github.com/philly/inkwell/internal/platform/pagination"
)

var errInternal = apperror.New(
	apperror.CodeInternalError,
	apperror.BusinessCodeGeneral,
	"notification operation failed",
	http.StatusInternalServerError,
)

// Page is a notification listing plus the caller's unread count.
type Page struct {
	pagination.Envelope[domain.FeedItem]
	Unread int `json:"unread"`
}

type NotificationsService struct {
	repo      ports.NotificationRepository
	activity  ports.ActivityRepository
	directory ports.Directory
	logger    logger.Logger
	now       func() time.Time
}

func NewNotificationsService(
	repo ports.NotificationRepository,
	activity ports.ActivityRepository,
	directory ports.Directory,
	logger logger.Logger,
) *NotificationsService {
	return &NotificationsService{
		repo:      repo,
		activity:  activity,
		directory: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// List pages the caller's stored notifications. The bell scope only returns
// unread ones.
func (s *NotificationsService) List(ctx context.Context, actor *authz.Principal, scope domain.Scope, page pagination.Request) (*Page, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return nil, err
	}

	var (
		rows   []*domain.Notification
		total  int
		unread int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, total, err = s.repo.List(gctx, actor.ID, scope.UnreadOnly(), page)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = s.repo.CountUnread(gctx, actor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.internal(ctx, "list", err)
	}

	items := make([]domain.FeedItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, domain.FeedItem{
			ID:        n.ID,
			Type:      n.Type,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
			Actor:     domain.Actor{ID: n.ActorID},
			Post:      domain.PostRef{ID: n.PostID},
			CommentID: n.CommentID,
		})
	}
	if err := s.decorate(ctx, items); err != nil {
		return nil, s.internal(ctx, "decorate", err)
	}

	return &Page{
		Envelope: pagination.NewEnvelope(items, total, page),
		Unread:   unread,
	}, nil
}

// OwnerFeed merges comments and likes on the caller's posts. Each source is
// paged with the same request; the merged page holds both slices.
func (s *NotificationsService) OwnerFeed(ctx context.Context, actor *authz.Principal, page pagination.Request) (pagination.Envelope[domain.FeedItem], error) {
	var empty pagination.Envelope[domain.FeedItem]
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return empty, err
	}

	var (
		comments, likes          []*domain.Activity
		commentTotal, likesTotal int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, commentTotal, err = s.activity.CommentsOnPostsBy(gctx, actor.ID, page)
		return err
	})
	g.Go(func() error {
		var err error
		likes, likesTotal, err = s.activity.LikesOnPostsBy(gctx, actor.ID, page)
		return err
	})
	if err := g.Wait(); err != nil {
		return empty, s.internal(ctx, "feed", err)
	}

	items := make([]domain.FeedItem, 0, len(comments)+len(likes))
	for _, src := range [][]*domain.Activity{comments, likes} {
		for _, a := range src {
			items = append(items, domain.FeedItem{
				ID:        a.ID,
				Type:      a.Type,
				CreatedAt: a.CreatedAt,
				Actor:     domain.Actor{ID: a.ActorID},
				Post:      domain.PostRef{ID: a.PostID},
				CommentID: a.CommentID,
				Excerpt:   a.Excerpt,
			})
		}
	}
	domain.SortNewestFirst(items)

	if err := s.decorate(ctx, items); err != nil {
		return empty, s.internal(ctx, "decorate", err)
	}

	offset := page.Offset()
	totalPages := max(
		pagination.TotalPages(commentTotal, page.Size),
		pagination.TotalPages(likesTotal, page.Size),
	)
	return pagination.Envelope[domain.FeedItem]{
		Items:       items,
		CurrentPage: page.Page,
		TotalPages:  totalPages,
		Total:       commentTotal + likesTotal,
		HasMore:     offset+len(comments) < commentTotal || offset+len(likes) < likesTotal,
	}, nil
}

// MarkRead is idempotent and never reports whether a row changed.
func (s *NotificationsService) MarkRead(ctx context.Context, actor *authz.Principal, id int64) error {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return err
	}
	n, err := s.repo.MarkRead(ctx, id, actor.ID, s.now())
	if err != nil {
		return s.internal(ctx, "mark read", err)
	}
	if n == 0 {
		s.logger.Debug(ctx, "mark read matched nothing", "notification_id", id)
	}
	return nil
}

func (s *NotificationsService) MarkAllRead(ctx context.Context, actor *authz.Principal) (int64, error) {
	if err := authzapp.Check(actor, authz.Authenticated()); err != nil {
		return 0, err
	}
	n, err := s.repo.MarkAllRead(ctx, actor.ID, s.now())
	if err != nil {
		return 0, s.internal(ctx, "mark all read", err)
	}
	return n, nil
}

// Record stores a notification unless it would notify the actor about
// their own activity.
func (s *NotificationsService) Record(ctx context.Context, n *domain.Notification) error {
	if n.OwnerID == n.ActorID {
		return nil
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return s.internal(ctx, "record", err)
	}
	return nil
}

// decorate fills actor and post display fields with one lookup per id set.
func (s *NotificationsService) decorate(ctx context.Context, items []domain.FeedItem) error {
	if len(items) == 0 {
		return nil
	}

	actorSet := make(map[uuid.UUID]struct{})
	postSet := make(map[int64]struct{})
	for _, it := range items {
		actorSet[it.Actor.ID] = struct{}{}
		postSet[it.Post.ID] = struct{}{}
	}
	actorIDs := make([]uuid.UUID, 0, len(actorSet))
	for id := range actorSet {
		actorIDs = append(actorIDs, id)
	}
	postIDs := make([]int64, 0, len(postSet))
	for id := range postSet {
		postIDs = append(postIDs, id)
	}

	var (
		actors map[uuid.UUID]domain.Actor
		titles map[int64]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actors, err = s.directory.ActorsByIDs(gctx, actorIDs)
		return err
	})
	g.Go(func() error {
		var err error
		titles, err = s.directory.PostTitlesByIDs(gctx, postIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		if a, ok := actors[items[i].Actor.ID]; ok {
			items[i].Actor = a
		} else {
			items[i].Actor = domain.PlaceholderActor(items[i].Actor.ID)
		}
		if title, ok := titles[items[i].Post.ID]; ok {
			items[i].Post.Title = title
		} else {
			items[i].Post.Title = domain.DeletedPostTitle
		}
	}
	return nil
}

func (s *NotificationsService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "notification operation failed", "op", op, "error", err)
	return errInternal.WithInner(err)
}
