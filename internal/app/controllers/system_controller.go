package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
)

// SystemController answers liveness and readiness probes
type SystemController struct {
	store  repositories.Pinger
	logger zerolog.Logger
}

// NewSystemController creates a new SystemController
func NewSystemController(store repositories.Pinger, logger zerolog.Logger) *SystemController {
	return &SystemController{store: store, logger: logger}
}

// Hello
// @Summary Liveness check
// @Tags system
// @Produce plain
// @Success 200 {string} string "Hello World!"
// @Router /test [get]
func (c *SystemController) Hello(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello World!")
}

// Health pings the store.
// @Summary Readiness check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		c.logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
