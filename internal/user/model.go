package user

import "time"

type User struct {
	ID           int64     `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserName     string    `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest payload for POST /register.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	UserName string `json:"userName" binding:"required" example:"ana"`
}

// LoginRequest payload for POST /login and POST /login-farmer.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}
