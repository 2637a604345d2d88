// Package memory implements every repository port over maps guarded by one
// mutex. Service and HTTP tests run against it; transactions snapshot the
// whole store and restore it on rollback.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	catdomain "github.com/philly/inkwell/internal/categories/domain"
	cmtdomain "github.com/philly/inkwell/internal/comments/domain"
	notifdomain "github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
	postdomain "github.com/philly/inkwell/internal/posts/domain"
	profdomain "github.com/philly/inkwell/internal/profiles/domain"
)

type likeRow struct {
	ID        int64
	PostID    int64
	UserID    uuid.UUID
	CreatedAt time.Time
}

type state struct {
	profiles      map[uuid.UUID]profdomain.Profile
	categories    map[int64]catdomain.Category
	posts         map[int64]postdomain.Post
	comments      map[int64]cmtdomain.Comment
	likes         map[int64]likeRow
	notifications map[int64]notifdomain.Notification
	nextID        int64
}

func (s *state) clone() *state {
	c := &state{
		profiles:      make(map[uuid.UUID]profdomain.Profile, len(s.profiles)),
		categories:    make(map[int64]catdomain.Category, len(s.categories)),
		posts:         make(map[int64]postdomain.Post, len(s.posts)),
		comments:      make(map[int64]cmtdomain.Comment, len(s.comments)),
		likes:         make(map[int64]likeRow, len(s.likes)),
		notifications: make(map[int64]notifdomain.Notification, len(s.notifications)),
		nextID:        s.nextID,
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.posts {
		c.posts[k] = v
	}
	for k, v := range s.comments {
		c.comments[k] = v
	}
	for k, v := range s.likes {
		c.likes[k] = v
	}
	for k, v := range s.notifications {
		c.notifications[k] = v
	}
	return c
}

// Store is the shared backing state for the repositories in this package.
type Store struct {
	mu       sync.Mutex
	data     *state
	clock    time.Time
	failures map[string]error
}

func NewStore() *Store {
	return &Store{
		data: &state{
			profiles:      map[uuid.UUID]profdomain.Profile{},
			categories:    map[int64]catdomain.Category{},
			posts:         map[int64]postdomain.Post{},
			comments:      map[int64]cmtdomain.Comment{},
			likes:         map[int64]likeRow{},
			notifications: map[int64]notifdomain.Notification{},
		},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		failures: map[string]error{},
	}
}

// tick returns a strictly increasing timestamp. Callers hold mu.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// id hands out ids from one sequence. Callers hold mu.
func (s *Store) id() int64 {
	s.data.nextID++
	return s.data.nextID
}

// TxManager runs transactions against the store.
func (s *Store) TxManager() postgres.TransactionManager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
}

func (m *txManager) BeginTx(ctx context.Context) (postgres.Transaction, error) {
	m.store.mu.Lock()
	snapshot := m.store.data.clone()
	m.store.mu.Unlock()
	return &tx{store: m.store, snapshot: snapshot}, nil
}

type tx struct {
	store    *Store
	snapshot *state
	done     bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.data = t.snapshot
	t.store.mu.Unlock()
	return nil
}

// Tx is nil; repositories here ignore WithTx.
func (t *tx) Tx() pgx.Tx { return nil }

// ErrInjected is a convenient error for FailOn.
var ErrInjected = errors.New("injected failure")

// FailOn makes the next call of op (for example "posts.Update") return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// fail consumes an injected failure. Callers hold mu.
func (s *Store) fail(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

func paginate[T any](items []T, page pagination.Request) []T {
	from := page.Offset()
	if from >= len(items) {
		return []T{}
	}
	to := min(from+page.Limit(), len(items))
	return items[from:to]
}

func newestFirst[T any](items []T, at func(T) time.Time, id func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := at(items[i]), at(items[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return id(items[i]) > id(items[j])
	})
}
