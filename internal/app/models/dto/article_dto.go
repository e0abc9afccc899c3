package dto

import "github.com/yigit/sporthub/internal/app/models"

// CreateArticleRequest holds the non-file fields of POST /articles
type CreateArticleRequest struct {
	Titre       string `form:"titre" binding:"required"`
	Description string `form:"description" binding:"required"`
	Corps       string `form:"corps" binding:"required"`
	Sport       string `form:"sport" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

type CreateArticleResponse struct {
	Message   string `json:"message" example:"article and media created successfully"`
	ArticleID int64  `json:"articleId" example:"5"`
	MediaID   int64  `json:"mediaId" example:"12"`
}

type ArticleListResponse struct {
	Articles []models.Article `json:"articles"`
	NextPage *int             `json:"nextPage"`
}
