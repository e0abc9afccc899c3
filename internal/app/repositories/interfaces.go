package repositories

import (
	"context"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// MediaRepository persists upload metadata.
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Media, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Media, error)
}

type TextPostRepository interface {
	Create(ctx context.Context, post *models.TextPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TextPost, error)
	List(ctx context.Context, page helpers.Page) ([]models.TextPost, error)
	// IncrementLikes adds one like in a single statement and returns the
	// number of rows touched.
	IncrementLikes(ctx context.Context, id int64) (int64, error)
}

type MediaPostRepository interface {
	Create(ctx context.Context, post *models.MediaPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MediaPost, error)
	List(ctx context.Context, page helpers.Page) ([]models.MediaPost, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, page helpers.Page) ([]models.Article, error)
}

// EventRepository persists events. Update and Delete are filtered by owner
// and report how many rows matched.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, page helpers.Page) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) (int64, error)
	Delete(ctx context.Context, id, ownerID int64) (int64, error)
	GetMaxParticipants(ctx context.Context, id int64) (int, error)
}

// ParticipantRepository persists event_participants join rows.
type ParticipantRepository interface {
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	Add(ctx context.Context, eventID, userID int64) (int64, error)
	Remove(ctx context.Context, eventID, userID int64) (int64, error)
	Count(ctx context.Context, eventID int64) (int, error)
	ListUsers(ctx context.Context, eventID int64) ([]models.Participant, error)
}

type SportRepository interface {
	List(ctx context.Context) ([]models.SportSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Sport, error)
	// EnsureExists inserts the sport unless one with that name is present.
	EnsureExists(ctx context.Context, name string, description *string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	UpdateSportsSuivis(ctx context.Context, username string, sportsSuivis *string) (int64, error)
}
