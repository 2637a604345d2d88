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

	cmtports "github.com/philly/inkwell/internal/comments/ports"
	likeports "github.com/philly/inkwell/internal/likes/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
	"github.com/philly/inkwell/internal/posts/domain"
	"github.com/philly/inkwell/internal/posts/ports"
)

// authorNameExpr falls back to the username when the display name is blank.
const authorNameExpr = "COALESCE(NULLIF(btrim(pr.name), ''), pr.username, '')"

// PostRepository implements posts/ports.PostRepository.
type PostRepository struct {
	postgres.BaseRepository
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *PostRepository) selectPosts() sq.SelectBuilder {
	return r.SB.
		Select(
			"p.id", "p.title", "p.description", "p.content", "p.images",
			"p.category_id", "COALESCE(c.name, '')",
			"p.author_id", authorNameExpr,
			"p.published", "p.status_id", "p.likes_count",
			"p.created_at", "p.updated_at",
		).
		From("posts p").
		LeftJoin("categories c ON c.id = p.category_id").
		LeftJoin("profiles pr ON pr.id = p.author_id")
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Insert("posts").
		Columns(
			"title", "description", "content", "images",
			"category_id", "author_id", "published", "status_id",
		).
		Values(
			post.Title,
			post.Description,
			post.Content,
			post.Image,
			post.CategoryID,
			pgUUID(post.AuthorID),
			post.Published,
			int16(post.StatusID),
		).
		Suffix("RETURNING id, likes_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Create: build query: %w", err)
	}

	err = r.DB.QueryRow(ctx, query, args...).Scan(&post.ID, &post.LikesCount, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err, postsCategoryFKey) {
			return ports.ErrCategoryNotFound
		}
		return fmt.Errorf("PostRepository.Create: %w", err)
	}
	return r.refreshNames(ctx, post)
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Update("posts").
		Set("title", post.Title).
		Set("description", post.Description).
		Set("content", post.Content).
		Set("images", post.Image).
		Set("category_id", post.CategoryID).
		Set("published", post.Published).
		Set("status_id", int16(post.StatusID)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": post.ID}).
		Suffix("RETURNING likes_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Update: build query: %w", err)
	}

	err = r.DB.QueryRow(ctx, query, args...).Scan(&post.LikesCount, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return ports.ErrPostNotFound
		case postgres.IsForeignKeyViolation(err, postsCategoryFKey):
			return ports.ErrCategoryNotFound
		}
		return fmt.Errorf("PostRepository.Update: %w", err)
	}
	return r.refreshNames(ctx, post)
}

// refreshNames fills the joined display fields after a write.
func (r *PostRepository) refreshNames(ctx context.Context, post *domain.Post) error {
	err := r.QueryRowBuilt(ctx, r.SB.
		Select("COALESCE(c.name, '')", authorNameExpr).
		From("posts p").
		LeftJoin("categories c ON c.id = p.category_id").
		LeftJoin("profiles pr ON pr.id = p.author_id").
		Where(sq.Eq{"p.id": post.ID})).
		Scan(&post.CategoryName, &post.AuthorName)
	if err != nil {
		return fmt.Errorf("PostRepository.refreshNames: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.QueryRowBuilt(ctx, r.selectPosts().Where(sq.Eq{"p.id": id}))
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrPostNotFound
		}
		return nil, fmt.Errorf("PostRepository.FindByID: %w", err)
	}
	return post, nil
}

// Delete relies on ON DELETE CASCADE for comments and likes.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.ExecBuilt(ctx, r.SB.Delete("posts").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: %w", err)
	}
	if n == 0 {
		return ports.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Post, int, error) {
	where := sq.And{}
	if filter.PublishedOnly {
		where = append(where, sq.Eq{"p.published": true})
	}
	if filter.CategoryID != nil {
		where = append(where, sq.Eq{"p.category_id": *filter.CategoryID})
	}
	if filter.AuthorID != nil {
		where = append(where, sq.Eq{"p.author_id": pgUUID(*filter.AuthorID)})
	}
	if q, ok := pagination.NormalizeQuery(filter.Query); ok {
		where = append(where, sq.ILike{"p.title": pagination.ContainsPattern(q)})
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("posts p").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("PostRepository.List: count: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.QueryBuilt(ctx, r.selectPosts().
		Where(where).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(filter.Page.Limit())).
		Offset(uint64(filter.Page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("PostRepository.List: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("PostRepository.List: scan: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("PostRepository.List: %w", err)
	}
	return posts, total, nil
}

func (r *PostRepository) GetPostAuthor(ctx context.Context, id int64) (uuid.UUID, error) {
	var author pgtype.UUID
	err := r.QueryRowBuilt(ctx, r.SB.Select("author_id").From("posts").Where(sq.Eq{"id": id})).Scan(&author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ports.ErrPostNotFound
		}
		return uuid.Nil, fmt.Errorf("PostRepository.GetPostAuthor: %w", err)
	}
	return uuid.UUID(author.Bytes), nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		post     domain.Post
		authorID pgtype.UUID
		status   int16
	)
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Content,
		&post.Image,
		&post.CategoryID,
		&post.CategoryName,
		&authorID,
		&post.AuthorName,
		&post.Published,
		&status,
		&post.LikesCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.AuthorID = uuid.UUID(authorID.Bytes)
	post.StatusID = domain.Status(status)
	return &post, nil
}

var _ ports.PostRepository = (*PostRepository)(nil)

// postMeta is shared by the comment and like lookups.
func postMeta(ctx context.Context, b postgres.BaseRepository, id int64) (uuid.UUID, bool, error) {
	var (
		author    pgtype.UUID
		published bool
	)
	err := b.QueryRowBuilt(ctx, b.SB.
		Select("author_id", "published").
		From("posts").
		Where(sq.Eq{"id": id})).
		Scan(&author, &published)
	if err != nil {
		return uuid.Nil, false, err
	}
	return uuid.UUID(author.Bytes), published, nil
}

type CommentPostLookup struct {
	postgres.BaseRepository
}

func NewCommentPostLookup(db *pgxpool.Pool) *CommentPostLookup {
	return &CommentPostLookup{BaseRepository: postgres.NewBaseRepository(db)}
}

func (l *CommentPostLookup) PostMeta(ctx context.Context, postID int64) (cmtports.PostMeta, error) {
	author, published, err := postMeta(ctx, l.BaseRepository, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cmtports.PostMeta{}, cmtports.ErrPostNotFound
		}
		return cmtports.PostMeta{}, fmt.Errorf("CommentPostLookup.PostMeta: %w", err)
	}
	return cmtports.PostMeta{AuthorID: author, Published: published}, nil
}

type LikePostLookup struct {
	postgres.BaseRepository
}

func NewLikePostLookup(db *pgxpool.Pool) *LikePostLookup {
	return &LikePostLookup{BaseRepository: postgres.NewBaseRepository(db)}
}

func (l *LikePostLookup) PostMeta(ctx context.Context, postID int64) (likeports.PostMeta, error) {
	author, published, err := postMeta(ctx, l.BaseRepository, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return likeports.PostMeta{}, likeports.ErrPostNotFound
		}
		return likeports.PostMeta{}, fmt.Errorf("LikePostLookup.PostMeta: %w", err)
	}
	return likeports.PostMeta{AuthorID: author, Published: published}, nil
}

var (
	_ cmtports.PostLookup  = (*CommentPostLookup)(nil)
	_ likeports.PostLookup = (*LikePostLookup)(nil)
)
