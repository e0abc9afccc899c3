package models

import "time"

type Sport struct {
	IDSport     int64     `json:"id_sport" db:"id_sport" example:"1"`
	Name        string    `json:"name" db:"name" example:"football"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SportSummary is the list view of a sport.
type SportSummary struct {
	IDSport int64  `json:"id_sport" db:"id_sport"`
	Name    string `json:"name" db:"name"`
}
