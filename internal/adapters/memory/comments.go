package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/comments/ports"
)

type CommentRepository struct {
	store *Store
}

func (s *Store) Comments() *CommentRepository { return &CommentRepository{store: s} }

// author joins the commenter's profile. Callers hold mu.
func (r *CommentRepository) author(c domain.Comment) *domain.Comment {
	if p, ok := r.store.data.profiles[c.UserID]; ok {
		c.Author = domain.Author{Username: p.Username, Name: p.Name, Avatar: p.AvatarURL()}
	}
	return &c
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("comments.Create"); err != nil {
		return err
	}
	if _, ok := r.store.data.posts[c.PostID]; !ok {
		return ports.ErrPostNotFound
	}
	c.ID = r.store.id()
	c.CreatedAt = r.store.tick()
	r.store.data.comments[c.ID] = *c
	*c = *r.author(*c)
	return nil
}

func (r *CommentRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Comment, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*domain.Comment
	for _, c := range r.store.data.comments {
		if filter.PostID != nil && c.PostID != *filter.PostID {
			continue
		}
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		matched = append(matched, r.author(c))
	}
	if filter.Order == domain.OrderOld {
		sort.Slice(matched, func(i, j int) bool {
			a, b := matched[i], matched[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		})
	} else {
		newestFirst(matched,
			func(c *domain.Comment) time.Time { return c.CreatedAt },
			func(c *domain.Comment) int64 { return c.ID },
		)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id int64, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.data.comments[id]
	if !ok || c.UserID != userID {
		return 0, nil
	}
	delete(r.store.data.comments, id)
	return 1, nil
}

// CommentCount is a test helper.
func (s *Store) CommentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.comments)
}

var _ ports.CommentRepository = (*CommentRepository)(nil)
