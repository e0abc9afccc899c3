package models

import "time"

// Event is a row of 'events'. Only the owner (UserID) may update or delete it.
type Event struct {
	IDEvent           int64     `json:"id_event" db:"id_event" example:"7"`
	UserID            int64     `json:"user_id" db:"user_id"`
	Username          string    `json:"username" db:"username"`
	Name              string    `json:"name" db:"name"`
	Date              string    `json:"date" db:"date"`
	Lieu              string    `json:"lieu" db:"lieu"`
	Sport             string    `json:"sport" db:"sport"`
	Genre             string    `json:"genre" db:"genre"`
	NbParticipantsMax int       `json:"nb_participants_max" db:"nb_participants_max" example:"10"`
	Description       string    `json:"description" db:"description"`
	IDMedia           int64     `json:"id_media" db:"id_media"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// EventParticipant is a join row of 'event_participants', unique per (event, user).
type EventParticipant struct {
	ID       int64     `json:"id" db:"id"`
	EventID  int64     `json:"event_id" db:"event_id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// Participant is the public view of a participant: user id and current username.
type Participant struct {
	UserID   int64  `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"`
}
