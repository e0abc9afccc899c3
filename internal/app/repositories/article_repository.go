package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

var articleColumns = []string{"id_article", "titre", "description", "corps", "sport", "date", "id_media", "auteur", "created_at"}

// PgArticleRepository handles article database operations
type PgArticleRepository struct {
	pgRepository
}

// NewArticleRepository creates a new PgArticleRepository
func NewArticleRepository(db DBTX, opts Options) *PgArticleRepository {
	return &PgArticleRepository{pgRepository: newPgRepository(db, opts)}
}

func (r *PgArticleRepository) Create(ctx context.Context, article *models.Article) (int64, error) {
	q := r.sb.Insert("articles").
		Columns("titre", "description", "corps", "sport", "date", "id_media", "auteur").
		Values(article.Titre, article.Description, article.Corps, article.Sport, article.Date, article.IDMedia, article.Auteur)
	return r.insertReturningID(ctx, q, "id_article", "article")
}

func (r *PgArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := r.sb.Select(articleColumns...).From("articles").Where(squirrel.Eq{"id_article": id})
	return selectOne[models.Article](ctx, r.db, q, "article")
}

func (r *PgArticleRepository) List(ctx context.Context, page helpers.Page) ([]models.Article, error) {
	q := r.paginate(r.sb.Select(articleColumns...).From("articles").OrderBy("id_article"), page)
	return selectMany[models.Article](ctx, r.db, q, "articles")
}
