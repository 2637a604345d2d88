package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	cmtports "github.com/philly/inkwell/internal/comments/ports"
	likeports "github.com/philly/inkwell/internal/likes/ports"
	"github.com/philly/inkwell/internal/posts/domain"
	"github.com/philly/inkwell/internal/posts/ports"
)

type PostRepository struct {
	store *Store
}

func (s *Store) Posts() *PostRepository { return &PostRepository{store: s} }

// AddPost inserts a post row as is and returns its id.
func (s *Store) AddPost(p domain.Post) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.tick()
	}
	p.UpdatedAt = p.CreatedAt
	p.StatusID = domain.StatusFor(p.Published)
	s.data.posts[p.ID] = p
	return p.ID
}

// decorate fills the joined display columns. Callers hold mu.
func (r *PostRepository) decorate(p domain.Post) *domain.Post {
	if c, ok := r.store.data.categories[p.CategoryID]; ok {
		p.CategoryName = c.Name
	}
	if prof, ok := r.store.data.profiles[p.AuthorID]; ok {
		p.AuthorName = prof.Name
		if p.AuthorName == "" {
			p.AuthorName = prof.Username
		}
	}
	return &p
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("posts.Create"); err != nil {
		return err
	}
	if _, ok := r.store.data.categories[p.CategoryID]; !ok {
		return ports.ErrCategoryNotFound
	}
	p.ID = r.store.id()
	p.CreatedAt = r.store.tick()
	p.UpdatedAt = p.CreatedAt
	r.store.data.posts[p.ID] = *p
	*p = *r.decorate(*p)
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.data.posts[id]
	if !ok {
		return nil, ports.ErrPostNotFound
	}
	return r.decorate(p), nil
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("posts.Update"); err != nil {
		return err
	}
	row, ok := r.store.data.posts[p.ID]
	if !ok {
		return ports.ErrPostNotFound
	}
	if _, ok := r.store.data.categories[p.CategoryID]; !ok {
		return ports.ErrCategoryNotFound
	}
	row.Title = p.Title
	row.Description = p.Description
	row.Content = p.Content
	row.Image = p.Image
	row.CategoryID = p.CategoryID
	row.Published = p.Published
	row.StatusID = p.StatusID
	row.UpdatedAt = r.store.tick()
	r.store.data.posts[p.ID] = row
	*p = *r.decorate(row)
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.data.posts[id]; !ok {
		return ports.ErrPostNotFound
	}
	delete(r.store.data.posts, id)
	for cid, c := range r.store.data.comments {
		if c.PostID == id {
			delete(r.store.data.comments, cid)
		}
	}
	for lid, l := range r.store.data.likes {
		if l.PostID == id {
			delete(r.store.data.likes, lid)
		}
	}
	return nil
}

func (r *PostRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Post, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("posts.List"); err != nil {
		return nil, 0, err
	}

	q := strings.ToLower(filter.Query)
	var matched []*domain.Post
	for _, p := range r.store.data.posts {
		switch {
		case filter.PublishedOnly && !p.Published:
			continue
		case filter.CategoryID != nil && p.CategoryID != *filter.CategoryID:
			continue
		case filter.AuthorID != nil && p.AuthorID != *filter.AuthorID:
			continue
		case q != "" && !strings.Contains(strings.ToLower(p.Title), q):
			continue
		}
		matched = append(matched, r.decorate(p))
	}
	newestFirst(matched,
		func(p *domain.Post) time.Time { return p.CreatedAt },
		func(p *domain.Post) int64 { return p.ID },
	)
	return paginate(matched, filter.Page), len(matched), nil
}

func (r *PostRepository) GetPostAuthor(ctx context.Context, id int64) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.data.posts[id]
	if !ok {
		return uuid.Nil, ports.ErrPostNotFound
	}
	return p.AuthorID, nil
}

var _ ports.PostRepository = (*PostRepository)(nil)

// postMeta is shared by the comment and like lookups. Callers hold mu.
func (s *Store) postMeta(id int64) (uuid.UUID, bool, bool) {
	p, ok := s.data.posts[id]
	return p.AuthorID, p.Published, ok
}

type CommentPostLookup struct {
	store *Store
}

func (s *Store) CommentPostLookup() *CommentPostLookup { return &CommentPostLookup{store: s} }

func (l *CommentPostLookup) PostMeta(ctx context.Context, postID int64) (cmtports.PostMeta, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	author, published, ok := l.store.postMeta(postID)
	if !ok {
		return cmtports.PostMeta{}, cmtports.ErrPostNotFound
	}
	return cmtports.PostMeta{AuthorID: author, Published: published}, nil
}

type LikePostLookup struct {
	store *Store
}

func (s *Store) LikePostLookup() *LikePostLookup { return &LikePostLookup{store: s} }

func (l *LikePostLookup) PostMeta(ctx context.Context, postID int64) (likeports.PostMeta, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	author, published, ok := l.store.postMeta(postID)
	if !ok {
		return likeports.PostMeta{}, likeports.ErrPostNotFound
	}
	return likeports.PostMeta{AuthorID: author, Published: published}, nil
}

var (
	_ cmtports.PostLookup  = (*CommentPostLookup)(nil)
	_ likeports.PostLookup = (*LikePostLookup)(nil)
)
