package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/logger"
)

// PgParticipantRepository handles database operations for event participants
type PgParticipantRepository struct {
	pgRepository
}

// NewParticipantRepository creates a new PgParticipantRepository
func NewParticipantRepository(db DBTX) *PgParticipantRepository {
	return &PgParticipantRepository{pgRepository: newPgRepository(db, Options{})}
}

// Exists checks if a user is a participant in a specific event
func (r *PgParticipantRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("event_participants").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building participant exists SQL")
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}

// Add adds a user as a participant to an event. A second join by the same
// user fails on the (event_id, user_id) unique constraint.
func (r *PgParticipantRepository) Add(ctx context.Context, eventID, userID int64) (int64, error) {
	q := r.sb.Insert("event_participants").
		Columns("event_id", "user_id").
		Values(eventID, userID)
	return r.insertReturningID(ctx, q, "id", "participant")
}

// Remove deletes the join row and reports how many rows went away.
func (r *PgParticipantRepository) Remove(ctx context.Context, eventID, userID int64) (int64, error) {
	q := r.sb.Delete("event_participants").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID})
	return r.exec(ctx, q, "remove participant")
}

// Count retrieves the number of participants for a specific event
func (r *PgParticipantRepository) Count(ctx context.Context, eventID int64) (int, error) {
	q := r.sb.Select("COUNT(*)").From("event_participants").Where(squirrel.Eq{"event_id": eventID})
	return r.count(ctx, q, "participants")
}

// ListUsers returns the id and current username of every participant.
func (r *PgParticipantRepository) ListUsers(ctx context.Context, eventID int64) ([]models.Participant, error) {
	q := r.sb.Select("u.user_id", "u.username").
		From("users u").
		Join("event_participants ep ON u.user_id = ep.user_id").
		Where(squirrel.Eq{"ep.event_id": eventID}).
		OrderBy("ep.joined_at", "ep.id")
	return selectMany[models.Participant](ctx, r.db, q, "participants")
}
