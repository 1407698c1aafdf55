package users

import (
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreateUserInput holds the data required to persist a new user. The
// password arrives pre-hashed; this service never sees plaintext.
type CreateUserInput struct {
	Email        string
	DisplayName  string
	PasswordHash string
	PhotoURL     *string
	Role         enums.UserRole
}

// UpdateUserInput captures the user fields open to mutation. Nil fields
// are left untouched.
type UpdateUserInput struct {
	DisplayName   *string
	PhotoURL      *string
	Role          *enums.UserRole
	EmailVerified *bool
}
