package dto

import "time"

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse describes an account. The credential hash never leaves the server.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse returns the issued session token alongside the account.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
