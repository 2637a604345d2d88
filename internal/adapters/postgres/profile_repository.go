package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	authz "github.com/philly/inkwell/internal/authz/domain"
	authzports "github.com/philly/inkwell/internal/authz/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
	"github.com/philly/inkwell/internal/profiles/domain"
	"github.com/philly/inkwell/internal/profiles/ports"
)

const usernameIndex = "profiles_username_lower_key"

var profileColumns = []string{
	"id", "email", "username", "name", "profile_pic", "role",
	"sessions_revoked_at", "created_at", "updated_at",
}

// ProfileRepository implements profiles/ports.ProfileRepository.
type ProfileRepository struct {
	postgres.BaseRepository
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	row := r.QueryRowBuilt(ctx, r.SB.
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": pgUUID(id)}))

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrProfileNotFound
		}
		return nil, fmt.Errorf("ProfileRepository.FindByID: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	if username == "" {
		return false, nil
	}
	n, err := r.Count(ctx, r.SB.
		Select("COUNT(*)").
		From("profiles").
		Where(sq.Expr("lower(username) = lower(?)", username)).
		Where(sq.NotEq{"id": pgUUID(excludeID)}))
	if err != nil {
		return false, fmt.Errorf("ProfileRepository.UsernameTaken: %w", err)
	}
	return n > 0, nil
}

// SaveOwn never writes the role; a new row gets the column default.
func (r *ProfileRepository) SaveOwn(ctx context.Context, p *domain.Profile) error {
	q := r.SB.
		Insert("profiles").
		Columns("id", "email", "username", "name", "profile_pic").
		Values(pgUUID(p.ID), p.Email, nullText(p.Username), p.Name, p.ProfilePic).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			profile_pic = EXCLUDED.profile_pic,
			updated_at = now()
		RETURNING role, sessions_revoked_at, created_at, updated_at`)
	return r.save(ctx, "SaveOwn", q, p)
}

func (r *ProfileRepository) SaveManaged(ctx context.Context, p *domain.Profile) error {
	role := p.Role
	if role == "" {
		role = authz.RoleUser
	}
	q := r.SB.
		Insert("profiles").
		Columns("id", "email", "username", "name", "profile_pic", "role").
		Values(pgUUID(p.ID), p.Email, nullText(p.Username), p.Name, p.ProfilePic, string(role)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			profile_pic = EXCLUDED.profile_pic,
			role = EXCLUDED.role,
			updated_at = now()
		RETURNING role, sessions_revoked_at, created_at, updated_at`)
	return r.save(ctx, "SaveManaged", q, p)
}

func (r *ProfileRepository) save(ctx context.Context, op string, q sq.InsertBuilder, p *domain.Profile) error {
	var role string
	err := r.QueryRowBuilt(ctx, q).Scan(&role, &p.SessionsRevokedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, usernameIndex) {
			return ports.ErrUsernameTaken
		}
		return fmt.Errorf("ProfileRepository.%s: %w", op, err)
	}
	p.Role = authz.Role(role)
	return nil
}

func (r *ProfileRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Profile, int, error) {
	where := sq.And{}
	if q, ok := pagination.NormalizeQuery(filter.Query); ok {
		pattern := pagination.ContainsPattern(q)
		where = append(where, sq.Or{sq.ILike{"username": pattern}, sq.ILike{"email": pattern}})
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("profiles").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("ProfileRepository.List: count: %w", err)
	}

	rows, err := r.QueryBuilt(ctx, r.SB.
		Select(profileColumns...).
		From("profiles").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Page.Limit())).
		Offset(uint64(filter.Page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("ProfileRepository.List: %w", err)
	}
	defer rows.Close()

	var out []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ProfileRepository.List: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ProfileRepository.List: %w", err)
	}
	return out, total, nil
}

func (r *ProfileRepository) RevokeSessions(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.ExecBuilt(ctx, r.SB.
		Insert("profiles").
		Columns("id", "sessions_revoked_at").
		Values(pgUUID(id), at).
		Suffix("ON CONFLICT (id) DO UPDATE SET sessions_revoked_at = EXCLUDED.sessions_revoked_at, updated_at = now()"))
	if err != nil {
		return fmt.Errorf("ProfileRepository.RevokeSessions: %w", err)
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p        domain.Profile
		id       pgtype.UUID
		username *string
		role     string
	)
	err := row.Scan(
		&id,
		&p.Email,
		&username,
		&p.Name,
		&p.ProfilePic,
		&role,
		&p.SessionsRevokedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.Username = stringValue(username)
	p.Role = authz.Role(role)
	return &p, nil
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

// AccessRepository reads role and revocation for the authorization gate.
type AccessRepository struct {
	postgres.BaseRepository
}

func NewAccessRepository(db *pgxpool.Pool) *AccessRepository {
	return &AccessRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *AccessRepository) FindAccess(ctx context.Context, userID uuid.UUID) (authz.Access, error) {
	var (
		role      string
		revokedAt *time.Time
	)
	err := r.QueryRowBuilt(ctx, r.SB.
		Select("role", "sessions_revoked_at").
		From("profiles").
		Where(sq.Eq{"id": pgUUID(userID)})).
		Scan(&role, &revokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authz.Access{}, authzports.ErrAccessNotFound
		}
		return authz.Access{}, fmt.Errorf("AccessRepository.FindAccess: %w", err)
	}
	return authz.Access{Role: authz.Role(role), SessionsRevokedAt: revokedAt}, nil
}

var _ authzports.AccessRepository = (*AccessRepository)(nil)
