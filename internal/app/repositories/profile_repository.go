package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
)

var profileColumns = []string{"id_profil", "username", "photo_profil", "sports_pratiques", "sports_suivis", "created_at"}

// PgProfileRepository handles profil database operations
type PgProfileRepository struct {
	pgRepository
}

// NewProfileRepository creates a new PgProfileRepository
func NewProfileRepository(db DBTX) *PgProfileRepository {
	return &PgProfileRepository{pgRepository: newPgRepository(db, Options{})}
}

// Create inserts the first half of a profile. sports_suivis stays NULL.
func (r *PgProfileRepository) Create(ctx context.Context, profile *models.Profile) (int64, error) {
	q := r.sb.Insert("profil").
		Columns("username", "photo_profil", "sports_pratiques").
		Values(profile.Username, profile.PhotoProfil, profile.SportsPratiques)
	return r.insertReturningID(ctx, q, "id_profil", "profile")
}

func (r *PgProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	q := r.sb.Select(profileColumns...).From("profil").Where(squirrel.Eq{"username": username})
	return selectOne[models.Profile](ctx, r.db, q, "profile")
}

// UpdateSportsSuivis sets the followed sports by username. No match is not
// an error; the caller gets 0.
func (r *PgProfileRepository) UpdateSportsSuivis(ctx context.Context, username string, sportsSuivis *string) (int64, error) {
	q := r.sb.Update("profil").
		Set("sports_suivis", sportsSuivis).
		Where(squirrel.Eq{"username": username})
	return r.exec(ctx, q, "update profile")
}
