package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
)

// PgSportRepository handles the sport taxonomy
type PgSportRepository struct {
	pgRepository
}

// NewSportRepository creates a new PgSportRepository
func NewSportRepository(db DBTX) *PgSportRepository {
	return &PgSportRepository{pgRepository: newPgRepository(db, Options{})}
}

// List returns id and name of every sport.
func (r *PgSportRepository) List(ctx context.Context) ([]models.SportSummary, error) {
	q := r.sb.Select("id_sport", "name").From("sports").OrderBy("id_sport")
	return selectMany[models.SportSummary](ctx, r.db, q, "sports")
}

func (r *PgSportRepository) GetByID(ctx context.Context, id int64) (*models.Sport, error) {
	q := r.sb.Select("id_sport", "name", "description", "created_at").
		From("sports").
		Where(squirrel.Eq{"id_sport": id})
	return selectOne[models.Sport](ctx, r.db, q, "sport")
}

// EnsureExists is idempotent: an existing name is left untouched.
func (r *PgSportRepository) EnsureExists(ctx context.Context, name string, description *string) error {
	q := r.sb.Insert("sports").
		Columns("name", "description").
		Values(name, description).
		Suffix("ON CONFLICT (name) DO NOTHING")
	_, err := r.exec(ctx, q, "seed sport")
	return err
}
