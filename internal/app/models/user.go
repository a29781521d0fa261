package models

import "time"

// User defines a portal account. The hash field is part of the persisted
// JSON document; API responses go through dto.UserResponse which omits it.
// Seeded accounts all carry the hash of the shared demo password.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	RollNumber   string    `json:"rollNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken tracks an issued refresh token so it can be rotated or
// revoked on logout.
type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `json:"revoked"`
}
