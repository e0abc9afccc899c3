package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
)

// ProfileController handles the two-step profile setup. Neither step
// requires a token; the profile is keyed by username.
type ProfileController struct {
	profileService services.ProfileService
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, storage filestorage.FileStorage, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		storage:        storage,
		logger:         logger,
	}
}

// CreateProfile is step one: practiced sports and an optional photo
// @Summary Create a profile
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param sports_pratiques formData string true "JSON array of practiced sports"
// @Param photo_profil formData file false "Profile photo"
// @Success 201 {object} dto.CreateProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field, invalid JSON or unsupported format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /profil-1-2 [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	photo, ok := optionalUpload(ctx, c.storage, "photo_profil")
	if !ok {
		return
	}
	var req dto.CreateProfileRequest
	if !bindRequest(ctx, c.logger, &req, "username and sports_pratiques are required") {
		return
	}

	profileID, err := c.profileService.Create(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateProfileResponse{
		Message:  "profile created successfully",
		ProfilID: profileID,
	})
}

// UpdateProfile is step two: followed sports. An unknown username is not an error.
// @Summary Set followed sports
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Followed sports"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Username is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /profil-2-2 [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindRequest(ctx, c.logger, &req, "username is required") {
		return
	}

	if err := c.profileService.UpdateFollowedSports(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "profile updated successfully")
}
