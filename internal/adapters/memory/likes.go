package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/philly/inkwell/internal/likes/domain"
	"github.com/philly/inkwell/internal/likes/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
)

type LikeRepository struct {
	store *Store
}

func (s *Store) Likes() *LikeRepository { return &LikeRepository{store: s} }

func (r *LikeRepository) WithTx(pgx.Tx) ports.LikeRepository { return r }

// find returns the like row of (postID, userID). Callers hold mu.
func (r *LikeRepository) find(postID int64, userID uuid.UUID) (likeRow, bool) {
	for _, l := range r.store.data.likes {
		if l.PostID == postID && l.UserID == userID {
			return l, true
		}
	}
	return likeRow{}, false
}

func (r *LikeRepository) count(postID int64) int {
	n := 0
	for _, l := range r.store.data.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n
}

func (r *LikeRepository) Insert(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.data.posts[postID]; !ok {
		return false, ports.ErrPostNotFound
	}
	if _, ok := r.find(postID, userID); ok {
		return false, nil
	}
	id := r.store.id()
	r.store.data.likes[id] = likeRow{ID: id, PostID: postID, UserID: userID, CreatedAt: r.store.tick()}
	return true, nil
}

func (r *LikeRepository) Remove(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	l, ok := r.find(postID, userID)
	if !ok {
		return 0, nil
	}
	delete(r.store.data.likes, l.ID)
	return 1, nil
}

func (r *LikeRepository) SyncCount(ctx context.Context, postID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("likes.SyncCount"); err != nil {
		return 0, err
	}
	p, ok := r.store.data.posts[postID]
	if !ok {
		return 0, ports.ErrPostNotFound
	}
	p.LikesCount = r.count(postID)
	r.store.data.posts[postID] = p
	return p.LikesCount, nil
}

func (r *LikeRepository) Count(ctx context.Context, postID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.count(postID), nil
}

func (r *LikeRepository) Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.find(postID, userID)
	return ok, nil
}

func (r *LikeRepository) ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Request) ([]*domain.LikedPost, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*domain.LikedPost
	for _, l := range r.store.data.likes {
		if l.UserID != userID {
			continue
		}
		p, ok := r.store.data.posts[l.PostID]
		if !ok || !p.Published {
			continue
		}
		matched = append(matched, &domain.LikedPost{
			LikeID:      l.ID,
			PostID:      p.ID,
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
			LikesCount:  p.LikesCount,
			LikedAt:     l.CreatedAt,
		})
	}
	newestFirst(matched,
		func(l *domain.LikedPost) time.Time { return l.LikedAt },
		func(l *domain.LikedPost) int64 { return l.LikeID },
	)
	return paginate(matched, page), len(matched), nil
}

var _ ports.LikeRepository = (*LikeRepository)(nil)
