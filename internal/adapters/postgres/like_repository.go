package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/likes/domain"
	"github.com/philly/inkwell/internal/likes/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
)

const likesPostFKey = "likes_post_id_fkey"

type LikeRepository struct {
	postgres.BaseRepository
}

func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *LikeRepository) WithTx(tx pgx.Tx) ports.LikeRepository {
	return &LikeRepository{BaseRepository: r.BaseRepository.WithTx(tx)}
}

func (r *LikeRepository) Insert(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Insert("likes").
		Columns("post_id", "user_id").
		Values(postID, pgUUID(userID)).
		Suffix("ON CONFLICT ON CONSTRAINT likes_post_user_key DO NOTHING"))
	if err != nil {
		if postgres.IsForeignKeyViolation(err, likesPostFKey) {
			return false, ports.ErrPostNotFound
		}
		return false, fmt.Errorf("LikeRepository.Insert: %w", err)
	}
	return n > 0, nil
}

func (r *LikeRepository) Remove(ctx context.Context, postID int64, userID uuid.UUID) (int64, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Delete("likes").
		Where(sq.Eq{"post_id": postID, "user_id": pgUUID(userID)}))
	if err != nil {
		return 0, fmt.Errorf("LikeRepository.Remove: %w", err)
	}
	return n, nil
}

func (r *LikeRepository) SyncCount(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.QueryRowBuilt(ctx, r.SB.
		Update("posts").
		Set("likes_count", sq.Expr("(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)")).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING likes_count")).
		Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ports.ErrPostNotFound
		}
		return 0, fmt.Errorf("LikeRepository.SyncCount: %w", err)
	}
	return count, nil
}

func (r *LikeRepository) Count(ctx context.Context, postID int64) (int, error) {
	n, err := r.BaseRepository.Count(ctx, r.SB.
		Select("COUNT(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID}))
	if err != nil {
		return 0, fmt.Errorf("LikeRepository.Count: %w", err)
	}
	return n, nil
}

func (r *LikeRepository) Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	n, err := r.BaseRepository.Count(ctx, r.SB.
		Select("COUNT(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID, "user_id": pgUUID(userID)}))
	if err != nil {
		return false, fmt.Errorf("LikeRepository.Exists: %w", err)
	}
	return n > 0, nil
}

func (r *LikeRepository) ListByUser(ctx context.Context, userID uuid.UUID, page pagination.Request) ([]*domain.LikedPost, int, error) {
	where := sq.Eq{"l.user_id": pgUUID(userID), "p.published": true}

	total, err := r.BaseRepository.Count(ctx, r.SB.
		Select("COUNT(*)").
		From("likes l").
		Join("posts p ON p.id = l.post_id").
		Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("LikeRepository.ListByUser: count: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.QueryBuilt(ctx, r.SB.
		Select("l.id", "p.id", "p.title", "p.description", "p.images", "p.likes_count", "l.created_at").
		From("likes l").
		Join("posts p ON p.id = l.post_id").
		Where(where).
		OrderBy("l.created_at DESC", "l.id DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("LikeRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	var out []*domain.LikedPost
	for rows.Next() {
		var lp domain.LikedPost
		if err := rows.Scan(&lp.LikeID, &lp.PostID, &lp.Title, &lp.Description, &lp.Image, &lp.LikesCount, &lp.LikedAt); err != nil {
			return nil, 0, fmt.Errorf("LikeRepository.ListByUser: scan: %w", err)
		}
		out = append(out, &lp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("LikeRepository.ListByUser: %w", err)
	}
	return out, total, nil
}

var _ ports.LikeRepository = (*LikeRepository)(nil)
