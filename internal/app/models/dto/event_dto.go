package dto

import (
	"bytes"
	"encoding/json"

	"github.com/yigit/sporthub/internal/app/models"
)

// Capacity is a participant limit. In JSON it may be a number or a numeric
// string; form values are parsed as integers by the binder.
type Capacity int

func (c *Capacity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := n.Int64()
	if err != nil {
		return err
	}
	*c = Capacity(v)
	return nil
}

// EventRequest carries the descriptive fields shared by event creation
// (multipart) and update (JSON or form).
type EventRequest struct {
	Name              string   `json:"name" form:"name" binding:"required"`
	Date              string   `json:"date" form:"date" binding:"required"`
	Lieu              string   `json:"lieu" form:"lieu" binding:"required"`
	Sport             string   `json:"sport" form:"sport" binding:"required"`
	Genre             string   `json:"genre" form:"genre" binding:"required"`
	NbParticipantsMax Capacity `json:"nb_participants_max" form:"nb_participants_max" binding:"required,gt=0" swaggertype:"integer"`
	Description       string   `json:"description" form:"description" binding:"required"`
}

type CreateEventResponse struct {
	Message string `json:"message" example:"event and media created successfully"`
	EventID int64  `json:"eventId" example:"7"`
	MediaID int64  `json:"mediaId" example:"12"`
}

// EventMutationResponse is returned by update and delete, whether or not a
// row was affected.
type EventMutationResponse struct {
	Message string `json:"message"`
	EventID int64  `json:"eventId" example:"7"`
}

type EventListResponse struct {
	Events   []models.Event `json:"events"`
	NextPage *int           `json:"nextPage"`
}

type ParticipantsResponse struct {
	Participants []models.Participant `json:"participants"`
}

type ParticipantCountResponse struct {
	Participants    int `json:"participants" example:"3"`
	MaxParticipants int `json:"maxParticipants" example:"10"`
}
