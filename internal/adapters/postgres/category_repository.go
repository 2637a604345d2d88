package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/categories/domain"
	"github.com/philly/inkwell/internal/categories/ports"
	"github.com/philly/inkwell/internal/platform/postgres"
	postports "github.com/philly/inkwell/internal/posts/ports"
)

const (
	categoryNameIndex  = "categories_name_lower_key"
	postsCategoryFKey  = "posts_category_id_fkey"
	isGeneralCondition = "lower(name) = lower(?)"
)

type CategoryRepository struct {
	postgres.BaseRepository
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *CategoryRepository) WithTx(tx pgx.Tx) ports.CategoryRepository {
	return &CategoryRepository{BaseRepository: r.BaseRepository.WithTx(tx)}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.QueryBuilt(ctx, r.SB.
		Select("c.id", "c.name", "c.created_at", "COUNT(p.id)").
		From("categories c").
		LeftJoin("posts p ON p.category_id = c.id").
		GroupBy("c.id").
		OrderByClause("(lower(c.name) = lower(?)) DESC", domain.GeneralName).
		OrderBy("lower(c.name)"))
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.List: %w", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.PostCount); err != nil {
			return nil, fmt.Errorf("CategoryRepository.List: scan: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CategoryRepository.List: %w", err)
	}
	return out, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, "FindByID", sq.Eq{"id": id})
}

func (r *CategoryRepository) FindGeneral(ctx context.Context) (*domain.Category, error) {
	return r.findOne(ctx, "FindGeneral", sq.Expr(isGeneralCondition, domain.GeneralName))
}

func (r *CategoryRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (*domain.Category, error) {
	var c domain.Category
	err := r.QueryRowBuilt(ctx, r.SB.
		Select("id", "name", "created_at").
		From("categories").
		Where(where).
		Limit(1)).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("CategoryRepository.%s: %w", op, err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := r.QueryRowBuilt(ctx, r.SB.
		Insert("categories").
		Columns("name").
		Values(c.Name).
		Suffix("RETURNING id, created_at")).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, categoryNameIndex) {
			return ports.ErrCategoryNameExists
		}
		return fmt.Errorf("CategoryRepository.Create: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Rename(ctx context.Context, id int64, name string) error {
	n, err := r.ExecBuilt(ctx, r.SB.
		Update("categories").
		Set("name", name).
		Where(sq.Eq{"id": id}))
	if err != nil {
		if postgres.IsUniqueViolation(err, categoryNameIndex) {
			return ports.ErrCategoryNameExists
		}
		return fmt.Errorf("CategoryRepository.Rename: %w", err)
	}
	if n == 0 {
		return ports.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) ReassignPosts(ctx context.Context, from, to int64) (int64, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Update("posts").
		Set("category_id", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"category_id": from}))
	if err != nil {
		if postgres.IsForeignKeyViolation(err, postsCategoryFKey) {
			return 0, ports.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("CategoryRepository.ReassignPosts: %w", err)
	}
	return n, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.ExecBuilt(ctx, r.SB.
		Delete("categories").
		Where(sq.Eq{"id": id}))
	if err != nil {
		if postgres.IsForeignKeyViolation(err, postsCategoryFKey) {
			return ports.ErrCategoryInUse
		}
		return fmt.Errorf("CategoryRepository.Delete: %w", err)
	}
	if n == 0 {
		return ports.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) EnsureGeneral(ctx context.Context) (bool, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Insert("categories").
		Columns("name").
		Values(domain.GeneralName).
		Suffix("ON CONFLICT DO NOTHING"))
	if err != nil {
		return false, fmt.Errorf("CategoryRepository.EnsureGeneral: %w", err)
	}
	return n > 0, nil
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// CategoryLookup answers the posts context's category questions.
type CategoryLookup struct {
	postgres.BaseRepository
}

func NewCategoryLookup(db *pgxpool.Pool) *CategoryLookup {
	return &CategoryLookup{BaseRepository: postgres.NewBaseRepository(db)}
}

func (l *CategoryLookup) CategoryExists(ctx context.Context, id int64) (bool, error) {
	n, err := l.Count(ctx, l.SB.Select("COUNT(*)").From("categories").Where(sq.Eq{"id": id}))
	if err != nil {
		return false, fmt.Errorf("CategoryLookup.CategoryExists: %w", err)
	}
	return n > 0, nil
}

func (l *CategoryLookup) GeneralCategoryID(ctx context.Context) (int64, error) {
	var id int64
	err := l.QueryRowBuilt(ctx, l.SB.
		Select("id").
		From("categories").
		Where(sq.Expr(isGeneralCondition, domain.GeneralName)).
		Limit(1)).
		Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, postports.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("CategoryLookup.GeneralCategoryID: %w", err)
	}
	return id, nil
}

var _ postports.CategoryLookup = (*CategoryLookup)(nil)
