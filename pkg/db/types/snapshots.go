package types

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// PersonSnapshot denormalizes a user's contact details onto the owning entity.
// Cross-store references stay by id; the snapshot exists so a job or booking
// renders without a user lookup.
type PersonSnapshot struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
}

// Value marshals the snapshot into JSON for Postgres.
func (p PersonSnapshot) Value() (driver.Value, error) {
	return marshalJSON(p)
}

// Scan decodes JSONB into the snapshot.
func (p *PersonSnapshot) Scan(value any) error {
	return scanJSON(value, p)
}

// ContactSnapshot captures a house owner or manager reference.
type ContactSnapshot struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Contact string    `json:"contact"`
}

// Value marshals the snapshot into JSON for Postgres.
func (c ContactSnapshot) Value() (driver.Value, error) {
	return marshalJSON(c)
}

// Scan decodes JSONB into the snapshot.
func (c *ContactSnapshot) Scan(value any) error {
	return scanJSON(value, c)
}
