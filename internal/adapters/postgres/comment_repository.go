package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/comments/domain"
	"github.com/philly/inkwell/internal/comments/ports"
	"github.com/philly/inkwell/internal/platform/postgres"
)

const commentsPostFKey = "comments_post_id_fkey"

type CommentRepository struct {
	postgres.BaseRepository
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	err := r.QueryRowBuilt(ctx, r.SB.
		Insert("comments").
		Columns("post_id", "user_id", "content").
		Values(c.PostID, pgUUID(c.UserID), c.Content).
		Suffix("RETURNING id, created_at")).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err, commentsPostFKey) {
			return ports.ErrPostNotFound
		}
		return fmt.Errorf("CommentRepository.Create: %w", err)
	}

	var pic *string
	err = r.QueryRowBuilt(ctx, r.SB.
		Select("COALESCE(username, '')", "name", "profile_pic").
		From("profiles").
		Where(sq.Eq{"id": pgUUID(c.UserID)})).
		Scan(&c.Author.Username, &c.Author.Name, &pic)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("CommentRepository.Create: author: %w", err)
	}
	c.Author.Avatar = stringValue(pic)
	return nil
}

func (r *CommentRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Comment, int, error) {
	where := sq.And{}
	if filter.PostID != nil {
		where = append(where, sq.Eq{"c.post_id": *filter.PostID})
	}
	if filter.UserID != nil {
		where = append(where, sq.Eq{"c.user_id": pgUUID(*filter.UserID)})
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("comments c").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("CommentRepository.List: count: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	order := []string{"c.created_at DESC", "c.id DESC"}
	if filter.Order == domain.OrderOld {
		order = []string{"c.created_at ASC", "c.id ASC"}
	}

	rows, err := r.QueryBuilt(ctx, r.SB.
		Select(
			"c.id", "c.post_id", "c.user_id", "c.content", "c.created_at",
			"COALESCE(pr.username, '')", "COALESCE(pr.name, '')", "COALESCE(pr.profile_pic, '')",
		).
		From("comments c").
		LeftJoin("profiles pr ON pr.id = c.user_id").
		Where(where).
		OrderBy(order...).
		Limit(uint64(filter.Page.Limit())).
		Offset(uint64(filter.Page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("CommentRepository.List: %w", err)
	}
	defer rows.Close()

	var out []*domain.Comment
	for rows.Next() {
		var (
			c      domain.Comment
			userID pgtype.UUID
		)
		if err := rows.Scan(
			&c.ID, &c.PostID, &userID, &c.Content, &c.CreatedAt,
			&c.Author.Username, &c.Author.Name, &c.Author.Avatar,
		); err != nil {
			return nil, 0, fmt.Errorf("CommentRepository.List: scan: %w", err)
		}
		c.UserID = uuid.UUID(userID.Bytes)
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("CommentRepository.List: %w", err)
	}
	return out, total, nil
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id int64, userID uuid.UUID) (int64, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Delete("comments").
		Where(sq.Eq{"id": id, "user_id": pgUUID(userID)}))
	if err != nil {
		return 0, fmt.Errorf("CommentRepository.DeleteOwned: %w", err)
	}
	return n, nil
}

var _ ports.CommentRepository = (*CommentRepository)(nil)
