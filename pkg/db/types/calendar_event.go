package types

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// EventAssignee is the reduced user reference carried on calendar events.
type EventAssignee struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// EventExtras holds the calendar-widget extended properties for an event.
type EventExtras struct {
	JobID               *uuid.UUID     `json:"job_id,omitempty"`
	AssignedTo          *EventAssignee `json:"assigned_to,omitempty"`
	Notes               []string       `json:"notes"`
	SuppliesNeeded      []string       `json:"supplies_needed"`
	SpecialInstructions []string       `json:"special_instructions"`
	CheckInTime         *string        `json:"check_in_time,omitempty"`
	CheckOutTime        *string        `json:"check_out_time,omitempty"`
}

// Value marshals the extras into JSON for Postgres.
func (e EventExtras) Value() (driver.Value, error) {
	return marshalJSON(e)
}

// Scan decodes JSONB into the extras.
func (e *EventExtras) Scan(value any) error {
	return scanJSON(value, e)
}
