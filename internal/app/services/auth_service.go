package services

import (
	"context"
	"errors"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/auth"
	"github.com/yigit/sporthub/internal/pkg/dberrors"
)

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type authService struct {
	base
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(b base, jwtService *auth.JWTService) AuthService {
	return &authService{base: b, jwtService: jwtService}
}

// Register checks username then email, hashes the password and inserts the
// user. Two concurrent registrations can both pass the checks; the loser
// then fails on the unique constraint.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperrors.NewBadRequestError("username, password and email are required")
	}

	taken, err := s.repos.Users.UsernameExists(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to check username")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	if taken {
		return nil, apperrors.NewConflictError("username already taken")
	}

	taken, err = s.repos.Users.EmailExists(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to check email")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	if taken {
		return nil, apperrors.NewConflictError("email already taken")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	id, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			s.logger.Warn().Err(err).
				Str("username", req.Username).
				Bool("emailConflict", dberrors.IsDuplicateConstraintError(err, "users_email_key")).
				Msg("Registration lost a race on a unique key")
		} else {
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		}
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	user.UserID = id

	s.logger.Info().Int64("userID", id).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies the credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.repos.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.metrics.ObserveLogin("unknown_email")
			return "", apperrors.NewResourceNotFoundError("user not found")
		}
		s.logger.Error().Err(err).Msg("Failed to get user by email")
		return "", apperrors.NewInternalError(msgInternal, err)
	}

	ok, err := auth.CheckPassword(user.Password, req.Password)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.UserID).Msg("Failed to verify password")
		return "", apperrors.NewInternalError("error verifying password", err)
	}
	if !ok {
		s.metrics.ObserveLogin("bad_password")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.UserID).Msg("Failed to sign token")
		return "", apperrors.NewInternalError(msgInternal, err)
	}

	s.metrics.ObserveLogin("success")
	s.logger.Debug().Int64("userID", user.UserID).Msg("User logged in")
	return token, nil
}
