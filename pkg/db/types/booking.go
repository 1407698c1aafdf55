package types

import (
	"database/sql/driver"
	"time"
)

// BookingDates is the guest stay window. CheckIn must precede CheckOut;
// the bookings service enforces this before persisting.
type BookingDates struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Value marshals the dates into JSON for Postgres.
func (b BookingDates) Value() (driver.Value, error) {
	return marshalJSON(b)
}

// Scan decodes JSONB into the dates.
func (b *BookingDates) Scan(value any) error {
	return scanJSON(value, b)
}
