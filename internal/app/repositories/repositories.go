package repositories

import (
	"context"
)

// Options tune list and locking behavior of the Postgres repositories.
type Options struct {
	// BoundedPagination applies LIMIT/OFFSET to list queries.
	BoundedPagination bool
	// LockRows makes guarding lookups take row locks. Only meaningful inside
	// a transaction.
	LockRows bool
}

// TxFunc runs against repositories bound to one transaction.
type TxFunc func(ctx context.Context, repos *Repositories) error

// Transactor opens a transaction and hands fn tx-scoped repositories.
type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

// Pinger checks that the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Users        UserRepository
	Media        MediaRepository
	TextPosts    TextPostRepository
	MediaPosts   MediaPostRepository
	Articles     ArticleRepository
	Events       EventRepository
	Participants ParticipantRepository
	Sports       SportRepository
	Profiles     ProfileRepository

	// Transactor is nil for repositories that already run inside a
	// transaction; WithTransaction then just calls fn.
	Transactor Transactor
	Pinger     Pinger
}

// WithTransaction runs fn atomically when the store supports it.
func (r *Repositories) WithTransaction(ctx context.Context, fn TxFunc) error {
	if r.Transactor == nil {
		return fn(ctx, r)
	}
	return r.Transactor.WithTransaction(ctx, fn)
}

// Ping reports whether the store is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.Pinger == nil {
		return nil
	}
	return r.Pinger.Ping(ctx)
}
