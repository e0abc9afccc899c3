package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/sporthub/internal/db"
)

// NewRepositories initializes all repositories on the connection pool.
func NewRepositories(pg *db.PostgresDB, opts Options) *Repositories {
	repos := newPostgresRepositories(pg.Pool, opts)
	repos.Transactor = &pgTransactor{pg: pg, opts: opts}
	repos.Pinger = pg
	return repos
}

func newPostgresRepositories(conn DBTX, opts Options) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(conn),
		Media:        NewMediaRepository(conn),
		TextPosts:    NewTextPostRepository(conn, opts),
		MediaPosts:   NewMediaPostRepository(conn, opts),
		Articles:     NewArticleRepository(conn, opts),
		Events:       NewEventRepository(conn, opts),
		Participants: NewParticipantRepository(conn),
		Sports:       NewSportRepository(conn),
		Profiles:     NewProfileRepository(conn),
	}
}

type pgTransactor struct {
	pg   *db.PostgresDB
	opts Options
}

func (t *pgTransactor) WithTransaction(ctx context.Context, fn TxFunc) error {
	return t.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		opts := t.opts
		opts.LockRows = true
		return fn(ctx, newPostgresRepositories(tx, opts))
	})
}
