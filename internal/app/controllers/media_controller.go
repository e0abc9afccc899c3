package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
)

// MediaController serves standalone uploads and stored files
type MediaController struct {
	mediaService services.MediaService
	storage      filestorage.FileStorage
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService services.MediaService, storage filestorage.FileStorage) *MediaController {
	return &MediaController{
		mediaService: mediaService,
		storage:      storage,
	}
}

// Upload stores one file for the caller
// @Summary Upload a media file
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image or video (jpeg, png, gif, mp4, quicktime)"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported format"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	fh, ok := optionalUpload(ctx, c.storage, "file")
	if !ok {
		return
	}

	mediaID, err := c.mediaService.Upload(ctx.Request.Context(), userID, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{
		Message: "media uploaded successfully",
		MediaID: mediaID,
	})
}

// ListByUser returns every media row of a user
// @Summary List a user's media
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Media
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No media found for this user"
// @Router /media/{user_id} [get]
func (c *MediaController) ListByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id", "no media found for this user")
	if !ok {
		return
	}

	media, err := c.mediaService.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, media)
}

// File streams a stored file by name
// @Summary Download a stored file
// @Tags media
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /media/file/{filename} [get]
func (c *MediaController) File(ctx *gin.Context) {
	fullPath, err := c.mediaService.FilePath(ctx.Request.Context(), ctx.Param("filename"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(fullPath)
}

// FileByMediaID streams the file behind a media row
// @Summary Download a media file by id
// @Tags media
// @Produce octet-stream
// @Param id_media path int true "Media ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Media or file not found"
// @Router /media/id/{id_media} [get]
func (c *MediaController) FileByMediaID(ctx *gin.Context) {
	mediaID, ok := parseIDParam(ctx, "id_media", "media not found")
	if !ok {
		return
	}

	fullPath, err := c.mediaService.MediaFilePath(ctx.Request.Context(), mediaID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(fullPath)
}
