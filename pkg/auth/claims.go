package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID        uuid.UUID
	Email         string
	DisplayName   string
	Role          enums.UserRole
	EmailVerified bool
	JTI           string
}

// AccessTokenClaims represents the typed JWT issued to clients. Email and
// display name ride along so CheckAuth can restore a user without a lookup.
type AccessTokenClaims struct {
	UserID        uuid.UUID      `json:"user_id"`
	Email         string         `json:"email"`
	DisplayName   string         `json:"display_name"`
	Role          enums.UserRole `json:"role"`
	EmailVerified bool           `json:"email_verified"`
	jwt.RegisteredClaims
}
