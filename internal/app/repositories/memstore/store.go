// Package memstore is an in-process implementation of the repository
// interfaces. It backs the "memory" database driver and the service tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/repositories"
)

type state struct {
	users        *table[models.User]
	media        *table[models.Media]
	textPosts    *table[models.TextPost]
	mediaPosts   *table[models.MediaPost]
	articles     *table[models.Article]
	events       *table[models.Event]
	participants *table[models.EventParticipant]
	sports       *table[models.Sport]
	profiles     *table[models.Profile]
}

func newState() *state {
	return &state{
		users:        newTable[models.User](),
		media:        newTable[models.Media](),
		textPosts:    newTable[models.TextPost](),
		mediaPosts:   newTable[models.MediaPost](),
		articles:     newTable[models.Article](),
		events:       newTable[models.Event](),
		participants: newTable[models.EventParticipant](),
		sports:       newTable[models.Sport](),
		profiles:     newTable[models.Profile](),
	}
}

func (s *state) clone() *state {
	return &state{
		users:        s.users.clone(),
		media:        s.media.clone(),
		textPosts:    s.textPosts.clone(),
		mediaPosts:   s.mediaPosts.clone(),
		articles:     s.articles.clone(),
		events:       s.events.clone(),
		participants: s.participants.clone(),
		sports:       s.sports.clone(),
		profiles:     s.profiles.clone(),
	}
}

// locker guards access to state. Tx-scoped repositories get a no-op locker
// because the transaction already holds the store mutex.
type locker interface {
	Lock()
	Unlock()
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// Store owns the in-memory tables.
type Store struct {
	mu    sync.Mutex
	st    *state
	opts  repositories.Options
	clock func() time.Time
}

// New returns an empty store.
func New(opts repositories.Options) *Store {
	return &Store{st: newState(), opts: opts, clock: time.Now}
}

// db is what every memstore repository embeds: the shared state, how to
// lock it and the pagination switch.
type db struct {
	store *Store
	lock  locker
}

func (d db) state() *state  { return d.store.st }
func (d db) now() time.Time { return d.store.clock().UTC() }

// Repositories builds the repository set over this store.
func (s *Store) Repositories() *repositories.Repositories {
	repos := s.bind(&s.mu)
	repos.Transactor = s
	repos.Pinger = s
	return repos
}

func (s *Store) bind(l locker) *repositories.Repositories {
	d := db{store: s, lock: l}
	return &repositories.Repositories{
		Users:        &userRepo{d},
		Media:        &mediaRepo{d},
		TextPosts:    &textPostRepo{d},
		MediaPosts:   &mediaPostRepo{d},
		Articles:     &articleRepo{d},
		Events:       &eventRepo{d},
		Participants: &participantRepo{d},
		Sports:       &sportRepo{d},
		Profiles:     &profileRepo{d},
	}
}

// WithTransaction runs fn with the store locked. Tables are snapshotted
// first and restored if fn fails, so a failed pipeline leaves nothing behind.
func (s *Store) WithTransaction(ctx context.Context, fn repositories.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if err := fn(ctx, s.bind(noLock{})); err != nil {
		return err
	}
	committed = true
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}
