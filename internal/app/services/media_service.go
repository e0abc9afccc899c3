package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

// MediaService handles standalone uploads and file retrieval
type MediaService interface {
	Upload(ctx context.Context, userID int64, fh *multipart.FileHeader) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Media, error)
	// FilePath maps a stored filename to a path on disk.
	FilePath(ctx context.Context, filename string) (string, error)
	// MediaFilePath maps a media id to the path of its file on disk.
	MediaFilePath(ctx context.Context, mediaID int64) (string, error)
}

type mediaService struct {
	base
}

// NewMediaService creates a new MediaService
func NewMediaService(b base) MediaService {
	return &mediaService{base: b}
}

// Upload rejects a missing or disallowed file before touching the store,
// checks the user still exists, then writes the file and its media row.
func (s *mediaService) Upload(ctx context.Context, userID int64, fh *multipart.FileHeader) (int64, error) {
	if fh == nil {
		return 0, apperrors.ErrFileRequired
	}
	if _, err := s.storage.CheckType(fh); err != nil {
		s.metrics.ObserveUpload("rejected")
		return 0, err
	}

	var mediaID int64
	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if _, err := s.lookupUser(ctx, repos, userID); err != nil {
			return err
		}
		id, err := s.writeMedia(ctx, repos, userID, fh)
		if err != nil {
			return err
		}
		mediaID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return mediaID, nil
}

func (s *mediaService) ListByUser(ctx context.Context, userID int64) ([]models.Media, error) {
	media, err := s.repos.Media.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list media")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	if len(media) == 0 {
		return nil, apperrors.NewResourceNotFoundError("no media found for this user")
	}
	return media, nil
}

func (s *mediaService) FilePath(_ context.Context, filename string) (string, error) {
	return s.locate(filename)
}

func (s *mediaService) MediaFilePath(ctx context.Context, mediaID int64) (string, error) {
	media, err := getOne(ctx, s.base, mediaID, "media not found", s.repos.Media.GetByID)
	if err != nil {
		return "", err
	}
	filePath := helpers.StringValue(media.Filepath)
	if filePath == "" {
		return "", apperrors.NewResourceNotFoundError("file not found")
	}
	return s.locate(filePath)
}

func (s *mediaService) locate(name string) (string, error) {
	fullPath, err := s.storage.Locate(name)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return "", apperrors.NewResourceNotFoundError("file not found")
		}
		s.logger.Error().Err(err).Str("file", name).Msg("Failed to locate file")
		return "", apperrors.NewInternalError(msgInternal, err)
	}
	return fullPath, nil
}
