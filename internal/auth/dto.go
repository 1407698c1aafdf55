package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=120"`
	Password    string `json:"password" validate:"required,min=8,max=256"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest rotates a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthenticatedUser is the identity restored from a valid token.
type AuthenticatedUser struct {
	ID            uuid.UUID      `json:"id"`
	Email         string         `json:"email"`
	DisplayName   string         `json:"display_name"`
	Role          enums.UserRole `json:"role"`
	EmailVerified bool           `json:"email_verified"`
}

// SessionResponse is the token pair handed to clients on register,
// login, and refresh.
type SessionResponse struct {
	User         AuthenticatedUser `json:"user"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	ExpiresAt    time.Time         `json:"expires_at"`
}
