package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/dberrors"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

const msgEventFieldsRequired = "name, date, lieu, sport, genre, nb_participants_max and description are required"

// EventService handles events and their participants
type EventService interface {
	List(ctx context.Context, p helpers.Page) ([]models.Event, *int, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, userID int64, req *dto.EventRequest, fh *multipart.FileHeader) (eventID, mediaID int64, err error)
	// Update and Delete only touch events owned by userID. Another user's
	// request matches nothing and still succeeds.
	Update(ctx context.Context, userID, eventID int64, req *dto.EventRequest) error
	Delete(ctx context.Context, userID, eventID int64) error

	Join(ctx context.Context, userID, eventID int64) error
	Leave(ctx context.Context, userID, eventID int64) error
	Participants(ctx context.Context, eventID int64) ([]models.Participant, error)
	ParticipantCount(ctx context.Context, eventID int64) (count, maxParticipants int, err error)
}

type eventService struct {
	base
}

// NewEventService creates a new EventService
func NewEventService(b base) EventService {
	return &eventService{base: b}
}

func validateEvent(req *dto.EventRequest) error {
	if req.Name == "" || req.Date == "" || req.Lieu == "" || req.Sport == "" || req.Genre == "" ||
		req.NbParticipantsMax <= 0 || req.Description == "" {
		return apperrors.NewBadRequestError(msgEventFieldsRequired)
	}
	return nil
}

func (s *eventService) List(ctx context.Context, p helpers.Page) ([]models.Event, *int, error) {
	return listPage(ctx, s.base, "events", p, s.repos.Events.List)
}

func (s *eventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return getOne(ctx, s.base, id, "event not found", s.repos.Events.GetByID)
}

func (s *eventService) Create(ctx context.Context, userID int64, req *dto.EventRequest, fh *multipart.FileHeader) (int64, int64, error) {
	if err := validateEvent(req); err != nil {
		return 0, 0, err
	}
	if fh == nil {
		return 0, 0, apperrors.ErrFileRequired
	}

	var eventID, mediaID int64
	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		user, err := s.lookupUser(ctx, repos, userID)
		if err != nil {
			return err
		}
		if mediaID, err = s.writeMedia(ctx, repos, userID, fh); err != nil {
			return err
		}
		eventID, err = repos.Events.Create(ctx, &models.Event{
			UserID:            userID,
			Username:          user.Username,
			Name:              req.Name,
			Date:              req.Date,
			Lieu:              req.Lieu,
			Sport:             req.Sport,
			Genre:             req.Genre,
			NbParticipantsMax: int(req.NbParticipantsMax),
			Description:       req.Description,
			IDMedia:           mediaID,
		})
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Int64("mediaID", mediaID).Msg("Failed to create event")
			return apperrors.NewInternalError("error creating event", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return eventID, mediaID, nil
}

// Update re-resolves the caller, then rewrites the event if they own it.
// The stored username snapshot is left as it was.
func (s *eventService) Update(ctx context.Context, userID, eventID int64, req *dto.EventRequest) error {
	if err := validateEvent(req); err != nil {
		return err
	}
	if _, err := s.lookupUser(ctx, s.repos, userID); err != nil {
		return err
	}

	n, err := s.repos.Events.Update(ctx, &models.Event{
		IDEvent:           eventID,
		UserID:            userID,
		Name:              req.Name,
		Date:              req.Date,
		Lieu:              req.Lieu,
		Sport:             req.Sport,
		Genre:             req.Genre,
		NbParticipantsMax: int(req.NbParticipantsMax),
		Description:       req.Description,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Failed to update event")
		return apperrors.NewInternalError("error updating event", err)
	}
	if n == 0 {
		s.logger.Debug().Int64("eventID", eventID).Int64("userID", userID).Msg("Event update matched no owned row")
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, userID, eventID int64) error {
	n, err := s.repos.Events.Delete(ctx, eventID, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Failed to delete event")
		return apperrors.NewInternalError("error deleting event", err)
	}
	if n == 0 {
		s.logger.Debug().Int64("eventID", eventID).Int64("userID", userID).Msg("Event delete matched no owned row")
	}
	return nil
}

// Join checks, in order, that the event exists, that the caller has not
// joined yet and that a seat is left, then inserts the join row. With atomic
// writes the event row stays locked across the four steps.
func (s *eventService) Join(ctx context.Context, userID, eventID int64) error {
	s.logger.Debug().Int64("eventID", eventID).Int64("userID", userID).Msg("User joining event")

	err := s.run(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		event, err := repos.Events.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.NewResourceNotFoundError("event not found")
			}
			s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to get event")
			return apperrors.NewInternalError(msgInternal, err)
		}

		joined, err := repos.Participants.Exists(ctx, eventID, userID)
		if err != nil {
			s.logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Failed to check participant")
			return apperrors.NewInternalError(msgInternal, err)
		}
		if joined {
			return apperrors.NewBadRequestError("user already registered for this event")
		}

		count, err := repos.Participants.Count(ctx, eventID)
		if err != nil {
			s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to count participants")
			return apperrors.NewInternalError(msgInternal, err)
		}
		if count >= event.NbParticipantsMax {
			return apperrors.NewBadRequestError("maximum number of participants reached")
		}

		if _, err := repos.Participants.Add(ctx, eventID, userID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				s.logger.Warn().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Concurrent join for the same user")
			} else {
				s.logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Failed to add participant")
			}
			return apperrors.NewInternalError(msgInternal, err)
		}
		return nil
	})

	s.metrics.ObserveJoin(joinOutcome(err))
	return err
}

func joinOutcome(err error) string {
	switch {
	case err == nil:
		return "joined"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrBadRequest):
		return "rejected"
	default:
		return "failed"
	}
}

func (s *eventService) Leave(ctx context.Context, userID, eventID int64) error {
	n, err := s.repos.Participants.Remove(ctx, eventID, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Failed to remove participant")
		return apperrors.NewInternalError(msgInternal, err)
	}
	if n == 0 {
		return apperrors.NewResourceNotFoundError("participant not found")
	}
	return nil
}

// Participants lists who joined. An unknown event simply has nobody.
func (s *eventService) Participants(ctx context.Context, eventID int64) ([]models.Participant, error) {
	participants, err := s.repos.Participants.ListUsers(ctx, eventID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to list participants")
		return nil, apperrors.NewInternalError(msgInternal, err)
	}
	return participants, nil
}

// ParticipantCount reads the count first and the capacity second.
func (s *eventService) ParticipantCount(ctx context.Context, eventID int64) (int, int, error) {
	count, err := s.repos.Participants.Count(ctx, eventID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to count participants")
		return 0, 0, apperrors.NewInternalError(msgInternal, err)
	}

	maxParticipants, err := s.repos.Events.GetMaxParticipants(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, 0, apperrors.NewResourceNotFoundError("event not found")
		}
		s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to get max participants")
		return 0, 0, apperrors.NewInternalError(msgInternal, err)
	}
	return count, maxParticipants, nil
}
