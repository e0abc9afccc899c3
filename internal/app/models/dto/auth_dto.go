package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"pw123"`
	Email    string `json:"email" form:"email" binding:"required" example:"a@x.com"`
}

// RegisterResponse is returned with 201 after registration
type RegisterResponse struct {
	Message  string `json:"message" example:"user created successfully"`
	UserID   int64  `json:"userId" example:"1"`
	Username string `json:"username" example:"alice"`
}

// LoginRequest represents login credentials. Fields are not required at
// binding time: an empty email is simply an unknown user.
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"a@x.com"`
	Password string `json:"password" form:"password" example:"pw123"`
}

// TokenResponse carries the signed bearer token
type TokenResponse struct {
	Token string `json:"token"`
}
