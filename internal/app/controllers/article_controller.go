package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

const msgArticleFieldsRequired = "titre, description, corps, sport and date are required"

// ArticleController handles articles
type ArticleController struct {
	articleService services.ArticleService
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService, storage filestorage.FileStorage, logger zerolog.Logger) *ArticleController {
	return &ArticleController{
		articleService: articleService,
		storage:        storage,
		logger:         logger,
	}
}

// ListArticles
// @Summary List articles
// @Tags articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ArticleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /articles [get]
func (c *ArticleController) ListArticles(ctx *gin.Context) {
	articles, next, err := c.articleService.List(ctx.Request.Context(), helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ArticleListResponse{Articles: articles, NextPage: next})
}

// GetArticle
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /articles/{id} [get]
func (c *ArticleController) GetArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "article not found")
	if !ok {
		return
	}

	article, err := c.articleService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// CreateArticle stores the cover file, its media row and the article
// @Summary Create an article
// @Tags articles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param titre formData string true "Title"
// @Param description formData string true "Summary"
// @Param corps formData string true "Body"
// @Param sport formData string true "Sport"
// @Param date formData string true "Date"
// @Param file formData file true "Cover image or video"
// @Success 201 {object} dto.CreateArticleResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field, missing file or unsupported format"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /articles [post]
func (c *ArticleController) CreateArticle(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	fh, ok := optionalUpload(ctx, c.storage, "file")
	if !ok {
		return
	}
	var req dto.CreateArticleRequest
	if !bindRequest(ctx, c.logger, &req, msgArticleFieldsRequired) {
		return
	}

	articleID, mediaID, err := c.articleService.Create(ctx.Request.Context(), userID, &req, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateArticleResponse{
		Message:   "article and media created successfully",
		ArticleID: articleID,
		MediaID:   mediaID,
	})
}
