package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
)

// SportController exposes the sport taxonomy
type SportController struct {
	sportService services.SportService
}

// NewSportController creates a new SportController
func NewSportController(sportService services.SportService) *SportController {
	return &SportController{sportService: sportService}
}

// ListSports
// @Summary List sports
// @Tags sports
// @Produce json
// @Success 200 {array} models.SportSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /sports [get]
func (c *SportController) ListSports(ctx *gin.Context) {
	sports, err := c.sportService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sports)
}

// GetSport
// @Summary Get a sport
// @Tags sports
// @Produce json
// @Param id path int true "Sport ID"
// @Success 200 {object} models.Sport
// @Failure 404 {object} dto.ErrorResponse "Sport not found"
// @Router /sports/{id} [get]
func (c *SportController) GetSport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "sport not found")
	if !ok {
		return
	}

	sport, err := c.sportService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sport)
}
