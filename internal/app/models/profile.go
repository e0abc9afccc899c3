package models

import "time"

// Profile is a row of 'profil', keyed by username. The sports columns hold
// JSON-encoded arrays as text; SportsSuivis stays NULL until the second step.
type Profile struct {
	IDProfil        int64     `json:"id_profil" db:"id_profil"`
	Username        string    `json:"username" db:"username"`
	PhotoProfil     *int64    `json:"photo_profil" db:"photo_profil"`
	SportsPratiques string    `json:"sports_pratiques" db:"sports_pratiques"`
	SportsSuivis    *string   `json:"sports_suivis" db:"sports_suivis"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
