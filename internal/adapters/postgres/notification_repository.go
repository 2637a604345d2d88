package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/inkwell/internal/notifications/domain"
	"github.com/philly/inkwell/internal/notifications/ports"
	"github.com/philly/inkwell/internal/platform/pagination"
	"github.com/philly/inkwell/internal/platform/postgres"
)

type NotificationRepository struct {
	postgres.BaseRepository
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

// Create keeps a caller-supplied CreatedAt; otherwise the column default applies.
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	cols := []string{"owner_id", "actor_id", "type", "post_id", "comment_id"}
	vals := []any{pgUUID(n.OwnerID), pgUUID(n.ActorID), string(n.Type), n.PostID, n.CommentID}
	if !n.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, n.CreatedAt)
	}
	err := r.QueryRowBuilt(ctx, r.SB.
		Insert("notifications").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id, created_at")).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("NotificationRepository.Create: %w", err)
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, ownerID uuid.UUID, unreadOnly bool, page pagination.Request) ([]*domain.Notification, int, error) {
	where := sq.And{sq.Eq{"owner_id": pgUUID(ownerID)}}
	if unreadOnly {
		where = append(where, sq.Eq{"read_at": nil})
	}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From("notifications").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("NotificationRepository.List: count: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.QueryBuilt(ctx, r.SB.
		Select("id", "owner_id", "actor_id", "type", "post_id", "comment_id", "created_at", "read_at").
		From("notifications").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("NotificationRepository.List: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		var (
			n            domain.Notification
			owner, actor pgtype.UUID
			kind         string
		)
		if err := rows.Scan(&n.ID, &owner, &actor, &kind, &n.PostID, &n.CommentID, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, 0, fmt.Errorf("NotificationRepository.List: scan: %w", err)
		}
		n.OwnerID = uuid.UUID(owner.Bytes)
		n.ActorID = uuid.UUID(actor.Bytes)
		n.Type = domain.Type(kind)
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("NotificationRepository.List: %w", err)
	}
	return out, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, ownerID uuid.UUID) (int, error) {
	n, err := r.Count(ctx, r.SB.
		Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"owner_id": pgUUID(ownerID), "read_at": nil}))
	if err != nil {
		return 0, fmt.Errorf("NotificationRepository.CountUnread: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, ownerID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Update("notifications").
		Set("read_at", at).
		Where(sq.Eq{"id": id, "owner_id": pgUUID(ownerID), "read_at": nil}))
	if err != nil {
		return 0, fmt.Errorf("NotificationRepository.MarkRead: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, ownerID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.ExecBuilt(ctx, r.SB.
		Update("notifications").
		Set("read_at", at).
		Where(sq.Eq{"owner_id": pgUUID(ownerID), "read_at": nil}))
	if err != nil {
		return 0, fmt.Errorf("NotificationRepository.MarkAllRead: %w", err)
	}
	return n, nil
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

// ActivityRepository reads the owner feed from the comments and likes tables.
type ActivityRepository struct {
	postgres.BaseRepository
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{BaseRepository: postgres.NewBaseRepository(db)}
}

func (r *ActivityRepository) CommentsOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error) {
	return r.activity(ctx, "CommentsOnPostsBy", "comments", domain.TypeComment, ownerID, page)
}

func (r *ActivityRepository) LikesOnPostsBy(ctx context.Context, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error) {
	return r.activity(ctx, "LikesOnPostsBy", "likes", domain.TypeLike, ownerID, page)
}

func (r *ActivityRepository) activity(ctx context.Context, op, table string, typ domain.Type, ownerID uuid.UUID, page pagination.Request) ([]*domain.Activity, int, error) {
	from := table + " a"
	join := "posts p ON p.id = a.post_id"
	where := sq.Eq{"p.author_id": pgUUID(ownerID)}

	total, err := r.Count(ctx, r.SB.Select("COUNT(*)").From(from).Join(join).Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("ActivityRepository.%s: count: %w", op, err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	content := "''"
	if typ == domain.TypeComment {
		content = "a.content"
	}
	rows, err := r.QueryBuilt(ctx, r.SB.
		Select("a.id", "a.user_id", "a.post_id", content, "a.created_at").
		From(from).
		Join(join).
		Where(where).
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())))
	if err != nil {
		return nil, 0, fmt.Errorf("ActivityRepository.%s: %w", op, err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		var (
			a      = domain.Activity{Type: typ}
			actor  pgtype.UUID
			detail string
		)
		if err := rows.Scan(&a.ID, &actor, &a.PostID, &detail, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("ActivityRepository.%s: scan: %w", op, err)
		}
		a.ActorID = uuid.UUID(actor.Bytes)
		if typ == domain.TypeComment {
			id := a.ID
			a.CommentID = &id
			a.Excerpt = domain.Excerpt(detail)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ActivityRepository.%s: %w", op, err)
	}
	return out, total, nil
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

// Directory batches the display lookups for feed decoration.
type Directory struct {
	postgres.BaseRepository
}

func NewDirectory(db *pgxpool.Pool) *Directory {
	return &Directory{BaseRepository: postgres.NewBaseRepository(db)}
}

func (d *Directory) ActorsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Actor, error) {
	out := make(map[uuid.UUID]domain.Actor, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := d.QueryBuilt(ctx, d.SB.
		Select("id", "name", "COALESCE(username, '')", "profile_pic").
		From("profiles").
		Where("id = ANY(?)", pgUUIDs(ids)))
	if err != nil {
		return nil, fmt.Errorf("Directory.ActorsByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             pgtype.UUID
			name, username string
			avatar         *string
		)
		if err := rows.Scan(&id, &name, &username, &avatar); err != nil {
			return nil, fmt.Errorf("Directory.ActorsByIDs: scan: %w", err)
		}
		uid := uuid.UUID(id.Bytes)
		out[uid] = domain.NewActor(uid, name, username, avatar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Directory.ActorsByIDs: %w", err)
	}
	return out, nil
}

func (d *Directory) PostTitlesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := d.QueryBuilt(ctx, d.SB.
		Select("id", "title").
		From("posts").
		Where("id = ANY(?)", ids))
	if err != nil {
		return nil, fmt.Errorf("Directory.PostTitlesByIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			title string
		)
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("Directory.PostTitlesByIDs: scan: %w", err)
		}
		out[id] = title
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Directory.PostTitlesByIDs: %w", err)
	}
	return out, nil
}

var _ ports.Directory = (*Directory)(nil)
