package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	UserID    int64     `json:"user_id" db:"user_id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alice"`
	Email     string    `json:"email" db:"email" example:"a@x.com"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      Role      `json:"role" db:"role" example:"user"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
