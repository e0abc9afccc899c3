package models

import "time"

// Media is one uploaded asset. Filename, type and path are NULL for the
// placeholder row written by profile creation without a photo.
type Media struct {
	IDMedia   int64     `json:"id_media" db:"id_media" example:"12"`
	UserID    int64     `json:"user_id" db:"user_id" example:"1"`
	Filename  *string   `json:"filename" db:"filename" example:"1717171717171-123456789.jpg"`
	Filetype  *string   `json:"filetype" db:"filetype" example:"image/jpeg"`
	Filepath  *string   `json:"filepath" db:"filepath" example:"/uploads/1717171717171-123456789.jpg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
