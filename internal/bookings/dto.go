package bookings

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreateBookingInput holds the data required to persist a new booking.
type CreateBookingInput struct {
	HouseID       uuid.UUID
	Guest         types.PersonSnapshot
	Dates         types.BookingDates
	Guests        int
	Status        enums.BookingStatus
	TotalPrice    decimal.Decimal
	PaymentStatus enums.PaymentStatus
	Notes         *string
}

// UpdateBookingInput captures the booking fields open to mutation. Nil
// fields are left untouched.
type UpdateBookingInput struct {
	Guest         *types.PersonSnapshot
	Dates         *types.BookingDates
	Guests        *int
	Status        *enums.BookingStatus
	TotalPrice    *decimal.Decimal
	PaymentStatus *enums.PaymentStatus
	Notes         *string
}
