package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/helpers"
	"github.com/yigit/sporthub/internal/pkg/logger"
)

var eventColumns = []string{
	"id_event", "user_id", "username", "name", "date", "lieu", "sport", "genre",
	"nb_participants_max", "description", "id_media", "created_at",
}

// PgEventRepository handles event database operations
type PgEventRepository struct {
	pgRepository
}

// NewEventRepository creates a new PgEventRepository
func NewEventRepository(db DBTX, opts Options) *PgEventRepository {
	return &PgEventRepository{pgRepository: newPgRepository(db, opts)}
}

func (r *PgEventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	q := r.sb.Insert("events").
		Columns("user_id", "username", "name", "date", "lieu", "sport", "genre", "nb_participants_max", "description", "id_media").
		Values(event.UserID, event.Username, event.Name, event.Date, event.Lieu, event.Sport, event.Genre,
			event.NbParticipantsMax, event.Description, event.IDMedia)
	return r.insertReturningID(ctx, q, "id_event", "event")
}

// GetByID loads an event. Inside a transaction the row is locked until
// commit, which serializes concurrent joins on the same event.
func (r *PgEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	q := r.sb.Select(eventColumns...).From("events").Where(squirrel.Eq{"id_event": id})
	if r.lockRows {
		q = q.Suffix("FOR UPDATE")
	}
	return selectOne[models.Event](ctx, r.db, q, "event")
}

func (r *PgEventRepository) List(ctx context.Context, page helpers.Page) ([]models.Event, error) {
	q := r.paginate(r.sb.Select(eventColumns...).From("events").OrderBy("id_event"), page)
	return selectMany[models.Event](ctx, r.db, q, "events")
}

// Update rewrites the descriptive fields of an event owned by event.UserID.
// Zero affected rows means either no such event or a different owner.
func (r *PgEventRepository) Update(ctx context.Context, event *models.Event) (int64, error) {
	q := r.sb.Update("events").
		SetMap(map[string]any{
			"name":                event.Name,
			"date":                event.Date,
			"lieu":                event.Lieu,
			"sport":               event.Sport,
			"genre":               event.Genre,
			"nb_participants_max": event.NbParticipantsMax,
			"description":         event.Description,
		}).
		Where(squirrel.Eq{"id_event": event.IDEvent, "user_id": event.UserID})
	return r.exec(ctx, q, "update event")
}

// Delete removes an event owned by ownerID. Participants cascade.
func (r *PgEventRepository) Delete(ctx context.Context, id, ownerID int64) (int64, error) {
	q := r.sb.Delete("events").Where(squirrel.Eq{"id_event": id, "user_id": ownerID})
	return r.exec(ctx, q, "delete event")
}

// GetMaxParticipants returns the capacity of an event, or ErrNotFound.
func (r *PgEventRepository) GetMaxParticipants(ctx context.Context, id int64) (int, error) {
	sql, args, err := r.sb.Select("nb_participants_max").From("events").Where(squirrel.Eq{"id_event": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building max participants SQL")
		return 0, fmt.Errorf("failed to build max participants query: %w", err)
	}

	var maxParticipants int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&maxParticipants); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get max participants: %w", err)
	}
	return maxParticipants, nil
}
