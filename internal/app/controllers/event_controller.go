package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

const (
	msgEventFieldsRequired = "name, date, lieu, sport, genre, nb_participants_max and description are required"
	msgEventNotFound       = "event not found"
)

// EventController handles events and their participants
type EventController struct {
	eventService services.EventService
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, storage filestorage.FileStorage, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		storage:      storage,
		logger:       logger,
	}
}

// ListEvents
// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, next, err := c.eventService.List(ctx.Request.Context(), helpers.ParsePage(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventListResponse{Events: events, NextPage: next})
}

// GetEvent
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", msgEventNotFound)
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// CreateEvent
// @Summary Create an event
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param date formData string true "Date"
// @Param lieu formData string true "Place"
// @Param sport formData string true "Sport"
// @Param genre formData string true "Category"
// @Param nb_participants_max formData int true "Capacity"
// @Param description formData string true "Description"
// @Param file formData file true "Image or video"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field, missing file or unsupported format"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	fh, ok := optionalUpload(ctx, c.storage, "file")
	if !ok {
		return
	}
	var req dto.EventRequest
	if !bindRequest(ctx, c.logger, &req, msgEventFieldsRequired) {
		return
	}

	eventID, mediaID, err := c.eventService.Create(ctx.Request.Context(), userID, &req, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateEventResponse{
		Message: "event and media created successfully",
		EventID: eventID,
		MediaID: mediaID,
	})
}

// UpdateEvent rewrites an event owned by the caller. A request on someone
// else's event changes nothing and still answers 200.
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event fields"
// @Success 200 {object} dto.EventMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	eventID, ok := parseIDParam(ctx, "id", msgEventNotFound)
	if !ok {
		return
	}
	var req dto.EventRequest
	if !bindRequest(ctx, c.logger, &req, msgEventFieldsRequired) {
		return
	}

	if err := c.eventService.Update(ctx.Request.Context(), userID, eventID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventMutationResponse{
		Message: "event updated successfully",
		EventID: eventID,
	})
}

// DeleteEvent
// @Summary Delete an event
// @Description Only the owner's event is removed; the answer is 200 either way.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventMutationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	eventID, ok := parseIDParam(ctx, "id", msgEventNotFound)
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventMutationResponse{
		Message: "event deleted successfully",
		EventID: eventID,
	})
}

// JoinEvent
// @Summary Join an event
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Already registered or event full"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/participants [post]
func (c *EventController) JoinEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	eventID, ok := parseIDParam(ctx, "id", msgEventNotFound)
	if !ok {
		return
	}

	if err := c.eventService.Join(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusCreated, "user added to the event successfully")
}

// LeaveEvent
// @Summary Leave an event
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /events/{id}/participants [delete]
func (c *EventController) LeaveEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	eventID, ok := parseIDParam(ctx, "id", "participant not found")
	if !ok {
		return
	}

	if err := c.eventService.Leave(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, http.StatusOK, "user removed from the event successfully")
}

// ListParticipants does not check that the event exists.
// @Summary List participants
// @Tags participants
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.ParticipantsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/participants [get]
func (c *EventController) ListParticipants(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.ParticipantsResponse{Participants: []models.Participant{}})
		return
	}

	participants, err := c.eventService.Participants(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantsResponse{Participants: participants})
}

// CountParticipants
// @Summary Count participants
// @Tags participants
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.ParticipantCountResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/participants/count [get]
func (c *EventController) CountParticipants(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id", msgEventNotFound)
	if !ok {
		return
	}

	count, maxParticipants, err := c.eventService.ParticipantCount(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ParticipantCountResponse{
		Participants:    count,
		MaxParticipants: maxParticipants,
	})
}
