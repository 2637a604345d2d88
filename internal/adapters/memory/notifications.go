package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/notifications/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type NotificationRepository struct {
	store *Store
}

func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{store: s} }

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n.ID = r.store.id()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.store.tick()
	}
	r.store.data.notifications[n.ID] = *n
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, ownerID uuid.UUID, unreadOnly bool, page pagination.Request) ([]*domain.Notification, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*domain.Notification
	for _, n := range r.store.data.notifications {
		if n.OwnerID != ownerID || (unreadOnly && n.IsRead()) {
			continue
		}
		matched = append(matched, &n)
	}
	newestFirst(matched,
		func(n *domain.Notification) time.Time { return n.CreatedAt },
		func(n *domain.Notification) int64 { return n.ID },
	)
	return paginate(matched, page), len(matched), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, ownerID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, n := range r.store.data.notifications {
		if n.OwnerID == ownerID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, ownerID uuid.UUID, at time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.data.notifications[id]
	if !ok || n.OwnerID != ownerID || n.IsRead() {
		return 0, nil
	}
	n.ReadAt = &at
	r.store.data.notifications[id] = n
	return 1, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, ownerID uuid.UUID, at time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var changed int64
	for id, n := range r.store.data.notifications {
		if n.OwnerID == ownerID && !n.IsRead() {
			n.ReadAt = &at
			r.store.data.notifications[id] = n
			changed++
		}
	}
	return changed, nil
}

// NotificationsFor returns every stored notification of ownerID, newest first.
func (s *Store) NotificationsFor(ownerID uuid.UUID) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Notification
	for _, n := range s.data.notifications {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	newestFirst(out,
		func(n domain.Notification) time.Time { return n.CreatedAt },
		func(n domain.Notification) int64 { return n.ID },
	)
	return out
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

type ActivityRepository struct {
	store *Store
}

func (s *Store) Activity() *ActivityRepository { return &ActivityRepository{store: s} }

func (r *ActivityRepository) CommentsOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*domain.Activity
	for _, c := range r.store.data.comments {
		p, ok := r.store.data.posts[c.PostID]
		if !ok || p.AuthorID != ownerID {
			continue
		}
		id := c.ID
		matched = append(matched, &domain.Activity{
			ID:        c.ID,
			Type:      domain.TypeComment,
			ActorID:   c.UserID,
			PostID:    c.PostID,
			CommentID: &id,
			Excerpt:   domain.Excerpt(c.Content),
			CreatedAt: c.CreatedAt,
		})
	}
	sortActivity(matched)
	return paginate(matched, page), len(matched), nil
}

func (r *ActivityRepository) LikesOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*domain.Activity
	for _, l := range r.store.data.likes {
		p, ok := r.store.data.posts[l.PostID]
		if !ok || p.AuthorID != ownerID {
			continue
		}
		matched = append(matched, &domain.Activity{
			ID:        l.ID,
			Type:      domain.TypeLike,
			ActorID:   l.UserID,
			PostID:    l.PostID,
			CreatedAt: l.CreatedAt,
		})
	}
	sortActivity(matched)
	return paginate(matched, page), len(matched), nil
}

func sortActivity(items []*domain.Activity) {
	newestFirst(items,
		func(a *domain.Activity) time.Time { return a.CreatedAt },
		func(a *domain.Activity) int64 { return a.ID },
	)
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

type Directory struct {
	store *Store
}

func (s *Store) Directory() *Directory { return &Directory{store: s} }

func (d *Directory) ActorsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Actor, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	out := make(map[uuid.UUID]domain.Actor, len(ids))
	for _, id := range ids {
		if p, ok := d.store.data.profiles[id]; ok {
			out[id] = domain.NewActor(id, p.Name, p.Username, p.ProfilePic)
		}
	}
	return out, nil
}

func (d *Directory) PostTitlesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if p, ok := d.store.data.posts[id]; ok {
			out[id] = p.Title
		}
	}
	return out, nil
}

var _ ports.Directory = (*Directory)(nil)
