package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

var (
	textPostColumns  = []string{"post_txt_id", "text", "description", "user_id", "username", "likes", "created_at"}
	mediaPostColumns = []string{"id_post_media", "id_media", "description", "user_id", "username", "created_at"}
)

// PgTextPostRepository handles post_txt operations
type PgTextPostRepository struct {
	pgRepository
}

func NewTextPostRepository(db DBTX, opts Options) *PgTextPostRepository {
	return &PgTextPostRepository{pgRepository: newPgRepository(db, opts)}
}

// Create inserts a post with zero likes.
func (r *PgTextPostRepository) Create(ctx context.Context, post *models.TextPost) (int64, error) {
	q := r.sb.Insert("post_txt").
		Columns("text", "description", "user_id", "username", "likes").
		Values(post.Text, post.Description, post.UserID, post.Username, 0)
	return r.insertReturningID(ctx, q, "post_txt_id", "text post")
}

func (r *PgTextPostRepository) GetByID(ctx context.Context, id int64) (*models.TextPost, error) {
	q := r.sb.Select(textPostColumns...).From("post_txt").Where(squirrel.Eq{"post_txt_id": id})
	return selectOne[models.TextPost](ctx, r.db, q, "text post")
}

func (r *PgTextPostRepository) List(ctx context.Context, page helpers.Page) ([]models.TextPost, error) {
	q := r.paginate(r.sb.Select(textPostColumns...).From("post_txt").OrderBy("post_txt_id"), page)
	return selectMany[models.TextPost](ctx, r.db, q, "text posts")
}

// IncrementLikes bumps the counter server-side so concurrent likes never
// lose an increment.
func (r *PgTextPostRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	q := r.sb.Update("post_txt").
		Set("likes", squirrel.Expr("likes + 1")).
		Where(squirrel.Eq{"post_txt_id": id})
	return r.exec(ctx, q, "increment likes")
}

// PgMediaPostRepository handles post_media operations
type PgMediaPostRepository struct {
	pgRepository
}

func NewMediaPostRepository(db DBTX, opts Options) *PgMediaPostRepository {
	return &PgMediaPostRepository{pgRepository: newPgRepository(db, opts)}
}

func (r *PgMediaPostRepository) Create(ctx context.Context, post *models.MediaPost) (int64, error) {
	q := r.sb.Insert("post_media").
		Columns("id_media", "description", "user_id", "username").
		Values(post.IDMedia, post.Description, post.UserID, post.Username)
	return r.insertReturningID(ctx, q, "id_post_media", "media post")
}

func (r *PgMediaPostRepository) GetByID(ctx context.Context, id int64) (*models.MediaPost, error) {
	q := r.sb.Select(mediaPostColumns...).From("post_media").Where(squirrel.Eq{"id_post_media": id})
	return selectOne[models.MediaPost](ctx, r.db, q, "media post")
}

func (r *PgMediaPostRepository) List(ctx context.Context, page helpers.Page) ([]models.MediaPost, error) {
	q := r.paginate(r.sb.Select(mediaPostColumns...).From("post_media").OrderBy("id_post_media"), page)
	return selectMany[models.MediaPost](ctx, r.db, q, "media posts")
}
