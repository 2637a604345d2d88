package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	authzdomain "github.com/philly/inkwell/internal/authz/domain"
	authzports "github.com/philly/inkwell/internal/authz/ports"
	"github.com/philly/inkwell/internal/profiles/domain"
	"github.com/philly/inkwell/internal/profiles/ports"
)

type ProfileRepository struct {
	store *Store
}

func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{store: s} }

// PutProfile inserts or replaces a profile row as is.
func (s *Store) PutProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.tick()
		p.UpdatedAt = p.CreatedAt
	}
	if p.Role == "" {
		p.Role = authzdomain.RoleUser
	}
	s.data.profiles[p.ID] = p
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("profiles.FindByID"); err != nil {
		return nil, err
	}
	p, ok := r.store.data.profiles[id]
	if !ok {
		return nil, ports.ErrProfileNotFound
	}
	return &p, nil
}

func (r *ProfileRepository) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.usernameTaken(username, excludeID), nil
}

func (r *ProfileRepository) usernameTaken(username string, excludeID uuid.UUID) bool {
	if username == "" {
		return false
	}
	for id, p := range r.store.data.profiles {
		if id != excludeID && strings.EqualFold(p.Username, username) {
			return true
		}
	}
	return false
}

func (r *ProfileRepository) SaveOwn(ctx context.Context, p *domain.Profile) error {
	return r.save(p, false)
}

func (r *ProfileRepository) SaveManaged(ctx context.Context, p *domain.Profile) error {
	return r.save(p, true)
}

func (r *ProfileRepository) save(p *domain.Profile, withRole bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("profiles.Save"); err != nil {
		return err
	}
	if r.usernameTaken(p.Username, p.ID) {
		return ports.ErrUsernameTaken
	}

	now := r.store.tick()
	row, exists := r.store.data.profiles[p.ID]
	if !exists {
		row = domain.Profile{ID: p.ID, Role: authzdomain.RoleUser, CreatedAt: now}
	}
	row.Email = p.Email
	row.Username = p.Username
	row.Name = p.Name
	row.ProfilePic = p.ProfilePic
	if withRole && p.Role != "" {
		row.Role = p.Role
	}
	row.UpdatedAt = now
	r.store.data.profiles[p.ID] = row

	*p = row
	return nil
}

func (r *ProfileRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Profile, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	q := strings.ToLower(filter.Query)
	var matched []*domain.Profile
	for _, p := range r.store.data.profiles {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Username), q) &&
			!strings.Contains(strings.ToLower(p.Email), q) {
			continue
		}
		matched = append(matched, &p)
	}
	sortProfiles(matched)
	return paginate(matched, filter.Page), len(matched), nil
}

func sortProfiles(items []*domain.Profile) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})
}

func (r *ProfileRepository) RevokeSessions(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("profiles.RevokeSessions"); err != nil {
		return err
	}
	row, exists := r.store.data.profiles[id]
	if !exists {
		now := r.store.tick()
		row = domain.Profile{ID: id, Role: authzdomain.RoleUser, CreatedAt: now, UpdatedAt: now}
	}
	row.SessionsRevokedAt = &at
	r.store.data.profiles[id] = row
	return nil
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

// AccessRepository answers role lookups from the profile rows.
type AccessRepository struct {
	store *Store
	calls int
}

func (s *Store) Access() *AccessRepository { return &AccessRepository{store: s} }

func (r *AccessRepository) FindAccess(ctx context.Context, userID uuid.UUID) (authzdomain.Access, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.calls++
	p, ok := r.store.data.profiles[userID]
	if !ok {
		return authzdomain.Access{}, authzports.ErrAccessNotFound
	}
	return authzdomain.Access{Role: p.Role, SessionsRevokedAt: p.SessionsRevokedAt}, nil
}

// Calls reports how many lookups were made.
func (r *AccessRepository) Calls() int {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.calls
}

var _ authzports.AccessRepository = (*AccessRepository)(nil)
