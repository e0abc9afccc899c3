package services

import (
	"context"
	"mime/multipart"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

// ArticleService handles articles
type ArticleService interface {
	List(ctx context.Context, p helpers.Page) ([]models.Article, *int, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, userID int64, req *dto.CreateArticleRequest, fh *multipart.FileHeader) (articleID, mediaID int64, err error)
}

type articleService struct {
	base
}

func NewArticleService(b base) ArticleService {
	return &articleService{base: b}
}

func (s *articleService) List(ctx context.Context, p helpers.Page) ([]models.Article, *int, error) {
	return listPage(ctx, s.base, "articles", p, s.repos.Articles.List)
}

func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	return getOne(ctx, s.base, id, "article not found", s.repos.Articles.GetByID)
}

// Create stores the cover file and the article. The author name is the
// writer's username at this moment.
func (s *articleService) Create(ctx context.Context, userID int64, req *dto.CreateArticleRequest, fh *multipart.FileHeader) (int64, int64, error) {
	if req.Titre == "" || req.Description == "" || req.Corps == "" || req.Sport == "" || req.Date == "" {
		return 0, 0, apperrors.NewBadRequestError("titre, description, corps, sport and date are required")
	}
	if fh == nil {
		return 0, 0, apperrors.ErrFileRequired
	}

	var articleID, mediaID int64
	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		user, err := s.lookupUser(ctx, repos, userID)
		if err != nil {
			return err
		}
		if mediaID, err = s.writeMedia(ctx, repos, userID, fh); err != nil {
			return err
		}
		articleID, err = repos.Articles.Create(ctx, &models.Article{
			Titre:       req.Titre,
			Description: req.Description,
			Corps:       req.Corps,
			Sport:       req.Sport,
			Date:        req.Date,
			IDMedia:     mediaID,
			Auteur:      user.Username,
		})
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Int64("mediaID", mediaID).Msg("Failed to create article")
			return apperrors.NewInternalError("error creating article", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return articleID, mediaID, nil
}
