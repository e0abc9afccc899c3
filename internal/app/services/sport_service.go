package services

import (
	"context"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
)

// SportService exposes the read-only sport taxonomy
type SportService interface {
	List(ctx context.Context) ([]models.SportSummary, error)
	Get(ctx context.Context, id int64) (*models.Sport, error)
}

type sportService struct {
	base
}

func NewSportService(b base) SportService {
	return &sportService{base: b}
}

func (s *sportService) List(ctx context.Context) ([]models.SportSummary, error) {
	sports, err := s.repos.Sports.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list sports")
		return nil, apperrors.NewInternalError("error retrieving sports", err)
	}
	return sports, nil
}

func (s *sportService) Get(ctx context.Context, id int64) (*models.Sport, error) {
	return getOne(ctx, s.base, id, "sport not found", s.repos.Sports.GetByID)
}
