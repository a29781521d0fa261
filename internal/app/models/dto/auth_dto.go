package dto

import (
	"time"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@campus.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Name       string `json:"name" binding:"required" example:"John Student"`
	Email      string `json:"email" binding:"required,email" example:"new@campus.edu"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=student staff admin" example:"student"`
	Avatar     string `json:"avatar,omitempty"`
	RollNumber string `json:"rollNumber,omitempty" example:"CS2021042"`
}

// RefreshTokenRequest carries a refresh token to be exchanged
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public view of a user record
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	RollNumber string    `json:"rollNumber,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TokenResponse is returned on login, signup and refresh
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         UserResponse `json:"user"`
}

// NewUserResponse maps a user record to its public view.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Avatar:     user.Avatar,
		RollNumber: user.RollNumber,
		CreatedAt:  user.CreatedAt,
	}
}
