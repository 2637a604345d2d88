package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// BaseRepository carries the connection and the statement builder every
// repository shares.
type BaseRepository struct {
	DB Querier
	SB sq.StatementBuilderType
}

func NewBaseRepository(db *pgxpool.Pool) BaseRepository {
	return BaseRepository{
		DB: db,
		SB: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// WithTx returns a copy bound to tx.
func (b BaseRepository) WithTx(tx pgx.Tx) BaseRepository {
	return BaseRepository{DB: tx, SB: b.SB}
}

// QueryBuilt renders a squirrel builder and runs it as a query.
func (b BaseRepository) QueryBuilt(ctx context.Context, q sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return b.DB.Query(ctx, sql, args...)
}

// QueryRowBuilt renders q and returns its single row. Build errors surface on Scan.
func (b BaseRepository) QueryRowBuilt(ctx context.Context, q sq.Sqlizer) pgx.Row {
	sql, args, err := q.ToSql()
	if err != nil {
		return errRow{err: err}
	}
	return b.DB.QueryRow(ctx, sql, args...)
}

// ExecBuilt renders q and executes it, returning the affected row count.
func (b BaseRepository) ExecBuilt(ctx context.Context, q sq.Sqlizer) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := b.DB.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count runs a SELECT COUNT(*) builder.
func (b BaseRepository) Count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	var n int
	if err := b.QueryRowBuilt(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
