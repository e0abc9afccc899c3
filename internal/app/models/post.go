package models

import "time"

// TextPost is a row of 'post_txt'. Username is a snapshot taken at creation.
type TextPost struct {
	PostTxtID   int64     `json:"post_txt_id" db:"post_txt_id" example:"3"`
	Text        string    `json:"text" db:"text" example:"hi"`
	Description string    `json:"description" db:"description" example:"d"`
	UserID      int64     `json:"user_id" db:"user_id" example:"1"`
	Username    string    `json:"username" db:"username" example:"alice"`
	Likes       int       `json:"likes" db:"likes" example:"0"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MediaPost is a row of 'post_media'.
type MediaPost struct {
	IDPostMedia int64     `json:"id_post_media" db:"id_post_media" example:"4"`
	IDMedia     int64     `json:"id_media" db:"id_media" example:"12"`
	Description string    `json:"description" db:"description"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
