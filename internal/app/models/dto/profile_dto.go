package dto

import "encoding/json"

// CreateProfileRequest holds the text fields of POST /profil-1-2.
// SportsPratiques is a JSON document sent as a form value.
type CreateProfileRequest struct {
	Username        string `form:"username" binding:"required"`
	SportsPratiques string `form:"sports_pratiques" binding:"required"`
}

type CreateProfileResponse struct {
	Message  string `json:"message" example:"profile created successfully"`
	ProfilID int64  `json:"profilId" example:"2"`
}

// UpdateProfileRequest is the body of PUT /profil-2-2. SportsSuivis is kept
// raw and stored as its JSON text.
type UpdateProfileRequest struct {
	Username     string          `json:"username" binding:"required"`
	SportsSuivis json.RawMessage `json:"sports_suivis" swaggertype:"array,string"`
}
