package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// HouseBooking is a guest stay reservation against a house.
type HouseBooking struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	HouseID       uuid.UUID            `gorm:"column:house_id;type:uuid;not null;index" json:"house_id"`
	Guest         types.PersonSnapshot `gorm:"column:guest;type:jsonb;not null" json:"guest"`
	Dates         types.BookingDates   `gorm:"column:dates;type:jsonb;not null" json:"dates"`
	Guests        int                  `gorm:"column:guests;not null;default:1" json:"guests"`
	Status        enums.BookingStatus  `gorm:"column:status;type:booking_status;not null;default:'pending'" json:"status"`
	TotalPrice    decimal.Decimal      `gorm:"column:total_price;type:numeric(12,2);not null;default:0" json:"total_price"`
	PaymentStatus enums.PaymentStatus  `gorm:"column:payment_status;type:payment_status;not null;default:'pending'" json:"payment_status"`
	Notes         *string              `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt     time.Time            `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (b HouseBooking) EntityID() uuid.UUID { return b.ID }
