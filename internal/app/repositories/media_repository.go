package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
)

var mediaColumns = []string{"id_media", "user_id", "filename", "filetype", "filepath", "created_at"}

// PgMediaRepository handles database operations for uploaded media
type PgMediaRepository struct {
	pgRepository
}

// NewMediaRepository creates a new PgMediaRepository
func NewMediaRepository(db DBTX) *PgMediaRepository {
	return &PgMediaRepository{pgRepository: newPgRepository(db, Options{})}
}

// Create records an upload. Nil filename, type and path are stored as NULL.
func (r *PgMediaRepository) Create(ctx context.Context, media *models.Media) (int64, error) {
	q := r.sb.Insert("medias").
		Columns("user_id", "filename", "filetype", "filepath").
		Values(media.UserID, media.Filename, media.Filetype, media.Filepath)
	return r.insertReturningID(ctx, q, "id_media", "media")
}

// GetByID retrieves a media row by ID
func (r *PgMediaRepository) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	q := r.sb.Select(mediaColumns...).From("medias").Where(squirrel.Eq{"id_media": id})
	return selectOne[models.Media](ctx, r.db, q, "media")
}

// ListByUser returns every media row owned by userID.
func (r *PgMediaRepository) ListByUser(ctx context.Context, userID int64) ([]models.Media, error) {
	q := r.sb.Select(mediaColumns...).
		From("medias").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id_media")
	return selectMany[models.Media](ctx, r.db, q, "media")
}
