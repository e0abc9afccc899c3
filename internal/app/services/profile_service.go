package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/dberrors"
)

// ProfileService builds a profile in two steps keyed by username.
// Neither step needs a token.
type ProfileService interface {
	// Create is step one: practiced sports and an optional photo.
	Create(ctx context.Context, req *dto.CreateProfileRequest, photo *multipart.FileHeader) (int64, error)
	// UpdateFollowedSports is step two. An unknown username updates nothing
	// and is not reported.
	UpdateFollowedSports(ctx context.Context, req *dto.UpdateProfileRequest) error
}

type profileService struct {
	base
}

func NewProfileService(b base) ProfileService {
	return &profileService{base: b}
}

func (s *profileService) Create(ctx context.Context, req *dto.CreateProfileRequest, photo *multipart.FileHeader) (int64, error) {
	if req.Username == "" || req.SportsPratiques == "" {
		return 0, apperrors.NewBadRequestError("username and sports_pratiques are required")
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(req.SportsPratiques)); err != nil {
		return 0, apperrors.NewBadRequestError("sports_pratiques must be a valid JSON array")
	}
	if photo != nil {
		if _, err := s.storage.CheckType(photo); err != nil {
			s.metrics.ObserveUpload("rejected")
			return 0, err
		}
	}

	var profileID int64
	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		user, err := repos.Users.GetByUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError("user not found")
			}
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to get user by username")
			return apperrors.NewInternalError(msgInternal, err)
		}

		mediaID, err := s.photoMedia(ctx, repos, user.UserID, photo)
		if err != nil {
			return err
		}

		profileID, err = repos.Profiles.Create(ctx, &models.Profile{
			Username:        req.Username,
			PhotoProfil:     &mediaID,
			SportsPratiques: compact.String(),
		})
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				s.logger.Warn().Str("username", req.Username).Msg("Profile already exists")
			} else {
				s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create profile")
			}
			return apperrors.NewInternalError("error creating profile", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return profileID, nil
}

// photoMedia always inserts a media row. Without a photo the row has no
// file, type or path.
func (s *profileService) photoMedia(ctx context.Context, repos *repositories.Repositories, userID int64, photo *multipart.FileHeader) (int64, error) {
	if photo != nil {
		return s.writeMedia(ctx, repos, userID, photo)
	}

	mediaID, err := repos.Media.Create(ctx, &models.Media{UserID: userID})
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to insert placeholder media")
		return 0, apperrors.NewInternalError("error inserting media", err)
	}
	return mediaID, nil
}

func (s *profileService) UpdateFollowedSports(ctx context.Context, req *dto.UpdateProfileRequest) error {
	if req.Username == "" {
		return apperrors.NewBadRequestError("username is required")
	}

	var suivis *string
	if len(req.SportsSuivis) > 0 {
		var compact bytes.Buffer
		if err := json.Compact(&compact, req.SportsSuivis); err != nil {
			return apperrors.NewBadRequestError("sports_suivis must be valid JSON")
		}
		v := compact.String()
		suivis = &v
	}

	n, err := s.repos.Profiles.UpdateSportsSuivis(ctx, req.Username, suivis)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to update profile")
		return apperrors.NewInternalError("error updating profile", err)
	}
	if n == 0 {
		s.logger.Debug().Str("username", req.Username).Msg("Profile update matched no row")
	}
	return nil
}
