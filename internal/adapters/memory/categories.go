package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/philly/inkwell/internal/categories/domain"
	"github.com/philly/inkwell/internal/categories/ports"
	postports "github.com/philly/inkwell/internal/posts/ports"
)

type CategoryRepository struct {
	store *Store
}

func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{store: s} }

// AddCategory inserts a category row without any checks and returns its id.
func (s *Store) AddCategory(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.data.categories[id] = domain.Category{ID: id, Name: name, CreatedAt: s.tick()}
	return id
}

func (r *CategoryRepository) WithTx(pgx.Tx) ports.CategoryRepository { return r }

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("categories.List"); err != nil {
		return nil, err
	}

	counts := make(map[int64]int)
	for _, p := range r.store.data.posts {
		counts[p.CategoryID]++
	}
	out := make([]*domain.Category, 0, len(r.store.data.categories))
	for _, c := range r.store.data.categories {
		c.PostCount = counts[c.ID]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if gi, gj := out[i].IsGeneral(), out[j].IsGeneral(); gi != gj {
			return gi
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.data.categories[id]
	if !ok {
		return nil, ports.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) FindGeneral(ctx context.Context) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.general(); ok {
		return &c, nil
	}
	return nil, ports.ErrCategoryNotFound
}

func (r *CategoryRepository) general() (domain.Category, bool) {
	for _, c := range r.store.data.categories {
		if c.IsGeneral() {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (r *CategoryRepository) nameTaken(name string, exclude int64) bool {
	for id, c := range r.store.data.categories {
		if id != exclude && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return ports.ErrCategoryNameExists
	}
	c.ID = r.store.id()
	c.CreatedAt = r.store.tick()
	r.store.data.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Rename(ctx context.Context, id int64, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.data.categories[id]
	if !ok {
		return ports.ErrCategoryNotFound
	}
	if r.nameTaken(name, id) {
		return ports.ErrCategoryNameExists
	}
	c.Name = name
	r.store.data.categories[id] = c
	return nil
}

func (r *CategoryRepository) ReassignPosts(ctx context.Context, from, to int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("categories.ReassignPosts"); err != nil {
		return 0, err
	}
	if _, ok := r.store.data.categories[to]; !ok {
		return 0, ports.ErrCategoryNotFound
	}
	var moved int64
	for id, p := range r.store.data.posts {
		if p.CategoryID == from {
			p.CategoryID = to
			r.store.data.posts[id] = p
			moved++
		}
	}
	return moved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("categories.Delete"); err != nil {
		return err
	}
	if _, ok := r.store.data.categories[id]; !ok {
		return ports.ErrCategoryNotFound
	}
	for _, p := range r.store.data.posts {
		if p.CategoryID == id {
			return ports.ErrCategoryInUse
		}
	}
	delete(r.store.data.categories, id)
	return nil
}

func (r *CategoryRepository) EnsureGeneral(ctx context.Context) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.general(); ok {
		return false, nil
	}
	id := r.store.id()
	r.store.data.categories[id] = domain.Category{ID: id, Name: domain.GeneralName, CreatedAt: r.store.tick()}
	return true, nil
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// CategoryLookup serves the posts context.
type CategoryLookup struct {
	store *Store
}

func (s *Store) CategoryLookup() *CategoryLookup { return &CategoryLookup{store: s} }

func (l *CategoryLookup) CategoryExists(ctx context.Context, id int64) (bool, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	_, ok := l.store.data.categories[id]
	return ok, nil
}

func (l *CategoryLookup) GeneralCategoryID(ctx context.Context) (int64, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	c, ok := (&CategoryRepository{store: l.store}).general()
	if !ok {
		return 0, postports.ErrCategoryNotFound
	}
	return c.ID, nil
}

var _ postports.CategoryLookup = (*CategoryLookup)(nil)

// CategoryCache is a process-local ports.CategoryCache.
type CategoryCache struct {
	mu     sync.Mutex
	cached []*domain.Category
	ok     bool
}

func NewCategoryCache() *CategoryCache { return &CategoryCache{} }

func (c *CategoryCache) Get(ctx context.Context) ([]*domain.Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached, c.ok
}

func (c *CategoryCache) Set(ctx context.Context, categories []*domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached, c.ok = categories, true
}

func (c *CategoryCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached, c.ok = nil, false
}

var _ ports.CategoryCache = (*CategoryCache)(nil)
