package services

import (
	"context"
	"mime/multipart"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

// TextPostService handles text posts and their likes
type TextPostService interface {
	List(ctx context.Context, p helpers.Page) ([]models.TextPost, *int, error)
	Get(ctx context.Context, id int64) (*models.TextPost, error)
	Create(ctx context.Context, userID int64, req *dto.CreateTextPostRequest) (int64, error)
	Like(ctx context.Context, id int64) error
}

type textPostService struct {
	base
}

func NewTextPostService(b base) TextPostService {
	return &textPostService{base: b}
}

func (s *textPostService) List(ctx context.Context, p helpers.Page) ([]models.TextPost, *int, error) {
	return listPage(ctx, s.base, "posts", p, s.repos.TextPosts.List)
}

func (s *textPostService) Get(ctx context.Context, id int64) (*models.TextPost, error) {
	return getOne(ctx, s.base, id, "post not found", s.repos.TextPosts.GetByID)
}

// Create snapshots the author's current username into the post.
func (s *textPostService) Create(ctx context.Context, userID int64, req *dto.CreateTextPostRequest) (int64, error) {
	if req.Text == "" || req.Description == "" {
		return 0, apperrors.NewBadRequestError("text and description are required")
	}

	user, err := s.lookupUser(ctx, s.repos, userID)
	if err != nil {
		return 0, err
	}

	id, err := s.repos.TextPosts.Create(ctx, &models.TextPost{
		Text:        req.Text,
		Description: req.Description,
		UserID:      userID,
		Username:    user.Username,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create post")
		return 0, apperrors.NewInternalError("error creating post", err)
	}
	return id, nil
}

// Like checks the post exists and adds one like. The increment happens in
// the store, so N likes always add exactly N.
func (s *textPostService) Like(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.repos.TextPosts.IncrementLikes(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("postID", id).Msg("Failed to add like")
		return apperrors.NewInternalError(msgInternal, err)
	}
	if n == 0 {
		return apperrors.NewResourceNotFoundError("post not found")
	}
	return nil
}

// MediaPostService handles posts built around one uploaded file
type MediaPostService interface {
	List(ctx context.Context, p helpers.Page) ([]models.MediaPost, *int, error)
	Get(ctx context.Context, id int64) (*models.MediaPost, error)
	Create(ctx context.Context, userID int64, req *dto.CreateMediaPostRequest, fh *multipart.FileHeader) (int64, error)
}

type mediaPostService struct {
	base
}

func NewMediaPostService(b base) MediaPostService {
	return &mediaPostService{base: b}
}

func (s *mediaPostService) List(ctx context.Context, p helpers.Page) ([]models.MediaPost, *int, error) {
	return listPage(ctx, s.base, "media posts", p, s.repos.MediaPosts.List)
}

func (s *mediaPostService) Get(ctx context.Context, id int64) (*models.MediaPost, error) {
	return getOne(ctx, s.base, id, "post not found", s.repos.MediaPosts.GetByID)
}

// Create runs user lookup, file write, media insert and post insert in that
// order. Without atomic writes a failed post insert leaves the media row.
func (s *mediaPostService) Create(ctx context.Context, userID int64, req *dto.CreateMediaPostRequest, fh *multipart.FileHeader) (int64, error) {
	if req.Description == "" {
		return 0, apperrors.NewBadRequestError("description is required")
	}
	if fh == nil {
		return 0, apperrors.ErrFileRequired
	}

	var postID int64
	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		user, err := s.lookupUser(ctx, repos, userID)
		if err != nil {
			return err
		}
		mediaID, err := s.writeMedia(ctx, repos, userID, fh)
		if err != nil {
			return err
		}
		postID, err = repos.MediaPosts.Create(ctx, &models.MediaPost{
			IDMedia:     mediaID,
			Description: req.Description,
			UserID:      userID,
			Username:    user.Username,
		})
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Int64("mediaID", mediaID).Msg("Failed to create media post")
			return apperrors.NewInternalError("error creating post", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return postID, nil
}
