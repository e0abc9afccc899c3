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

// PostController handles text posts and media posts
type PostController struct {
	textPosts  services.TextPostService
	mediaPosts services.MediaPostService
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(textPosts services.TextPostService, mediaPosts services.MediaPostService, storage filestorage.FileStorage, logger zerolog.Logger) *PostController {
	return &PostController{
		textPosts:  textPosts,
		mediaPosts: mediaPosts,
		storage:    storage,
		logger:     logger,
	}
}

// ListTextPosts returns one page of text posts
// @Summary List text posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.TextPostListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /posts-txt [get]
func (c *PostController) ListTextPosts(ctx *gin.Context) {
	posts, next, err := c.textPosts.List(ctx.Request.Context(), helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TextPostListResponse{Posts: posts, NextPage: next})
}

// GetTextPost
// @Summary Get a text post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.TextPost
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts-txt/{id} [get]
func (c *PostController) GetTextPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "post not found")
	if !ok {
		return
	}

	post, err := c.textPosts.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// CreateTextPost
// @Summary Create a text post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTextPostRequest true "Post content"
// @Success 201 {object} dto.CreateTextPostResponse
// @Failure 400 {object} dto.ErrorResponse "Text and description are required"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /posts-txt [post]
func (c *PostController) CreateTextPost(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.CreateTextPostRequest
	if !bindRequest(ctx, c.logger, &req, "text and description are required") {
		return
	}

	id, err := c.textPosts.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateTextPostResponse{
		Message: "post created successfully",
		PostID:  id,
	})
}

// LikeTextPost adds one like. There is no per-user limit.
// @Summary Like a text post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts-txt/{id}/like [post]
func (c *PostController) LikeTextPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "post not found")
	if !ok {
		return
	}

	if err := c.textPosts.Like(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "like added successfully")
}

// ListMediaPosts
// @Summary List media posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.MediaPostListResponse
// @Router /posts-media [get]
func (c *PostController) ListMediaPosts(ctx *gin.Context) {
	posts, next, err := c.mediaPosts.List(ctx.Request.Context(), helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MediaPostListResponse{Posts: posts, NextPage: next})
}

// GetMediaPost
// @Summary Get a media post
// @Tags posts
// @Produce json
// @Param id path int true "Media post ID"
// @Success 200 {object} models.MediaPost
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts-media/{id} [get]
func (c *PostController) GetMediaPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "post not found")
	if !ok {
		return
	}

	post, err := c.mediaPosts.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// CreateMediaPost
// @Summary Create a media post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param description formData string true "Description"
// @Param file formData file true "Image or video"
// @Success 201 {object} dto.CreateMediaPostResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field, missing file or unsupported format"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /posts-media [post]
func (c *PostController) CreateMediaPost(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	fh, ok := optionalUpload(ctx, c.storage, "file")
	if !ok {
		return
	}
	var req dto.CreateMediaPostRequest
	if !bindRequest(ctx, c.logger, &req, "description is required") {
		return
	}

	id, err := c.mediaPosts.Create(ctx.Request.Context(), userID, &req, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateMediaPostResponse{
		Message:     "media post created successfully",
		PostMediaID: id,
	})
}
