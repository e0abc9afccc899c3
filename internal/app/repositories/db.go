package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/sporthub/internal/pkg/helpers"
	"github.com/yigit/sporthub/internal/pkg/logger"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgRepository carries what every Postgres repository needs.
type pgRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType

	// bounded applies LIMIT/OFFSET to list queries.
	bounded bool
	// lockRows adds FOR UPDATE to lookups that guard a later write.
	lockRows bool
}

func newPgRepository(db DBTX, opts Options) pgRepository {
	return pgRepository{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		bounded:  opts.BoundedPagination,
		lockRows: opts.LockRows,
	}
}

// paginate applies the page window when bounded pagination is on. Otherwise
// the whole table is read and the page only drives nextPage.
func (r pgRepository) paginate(q squirrel.SelectBuilder, p helpers.Page) squirrel.SelectBuilder {
	if !r.bounded {
		return q
	}
	return q.Limit(uint64(p.Limit)).Offset(p.Offset())
}

// insertReturningID runs an INSERT ... RETURNING <idColumn>.
func (r pgRepository) insertReturningID(ctx context.Context, q squirrel.InsertBuilder, idColumn, what string) (int64, error) {
	sql, args, err := q.Suffix("RETURNING " + idColumn).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build insert %s query: %w", what, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", what, err)
	}
	return id, nil
}

// exec runs an UPDATE or DELETE and returns the affected row count.
func (r pgRepository) exec(ctx context.Context, q squirrel.Sqlizer, what string) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error building SQL")
		return 0, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to %s: %w", what, err)
	}
	return tag.RowsAffected(), nil
}

// selectOne runs q and maps its single row onto T by db tags.
// No row yields ErrNotFound.
func selectOne[T any](ctx context.Context, db DBTX, q squirrel.SelectBuilder, what string) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building select SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	return item, nil
}

// selectMany runs q and maps every row onto T. An empty result is an empty,
// non-nil slice so it encodes as [].
func selectMany[T any](ctx context.Context, db DBTX, q squirrel.SelectBuilder, what string) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building list SQL")
		return nil, fmt.Errorf("failed to build list %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// count runs a SELECT COUNT(*) style query.
func (r pgRepository) count(ctx context.Context, q squirrel.SelectBuilder, what string) (int, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error building count SQL")
		return 0, fmt.Errorf("failed to build count %s query: %w", what, err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}
