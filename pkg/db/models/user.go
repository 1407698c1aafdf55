package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// User represents the canonical identity entity. IDs are minted client-side
// by the users service before the insert is confirmed.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string         `gorm:"type:text;not null;uniqueIndex" json:"email"`
	DisplayName   string         `gorm:"column:display_name;not null" json:"display_name"`
	PasswordHash  string         `gorm:"column:password_hash;not null" json:"-"`
	PhotoURL      *string        `gorm:"column:photo_url" json:"photo_url,omitempty"`
	Role          enums.UserRole `gorm:"column:role;type:user_role;not null;default:'user'" json:"role"`
	EmailVerified bool           `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (u User) EntityID() uuid.UUID { return u.ID }
