package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates an account. Username and email must both be unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.RegisterResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 409 {object} dto.ErrorResponse "Username or email already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindRequest(ctx, c.logger, &req, "username, password and email are required") {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:  "user created successfully",
		UserID:   user.UserID,
		Username: user.Username,
	})
}

// Login handles user login
// @Summary User login
// @Description Checks the credentials and returns a bearer token that does not expire
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	// An empty body is an empty email, which is answered as an unknown user.
	if err := ctx.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.logger.Debug().Str("reason", middleware.DescribeBindingError(err)).Msg("Invalid login payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
