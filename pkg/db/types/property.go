package types

import (
	"database/sql/driver"

	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CleaningRequirements describes the recurring service profile of a property.
type CleaningRequirements struct {
	Frequency           enums.CleaningFrequency `json:"frequency"`
	CustomFrequency     *string                 `json:"custom_frequency,omitempty"`
	SpecialInstructions []string                `json:"special_instructions"`
	RequiredSupplies    []string                `json:"required_supplies"`
	EstimatedDuration   int                     `json:"estimated_duration"`
}

// Value marshals the requirements into JSON for Postgres.
func (c CleaningRequirements) Value() (driver.Value, error) {
	return marshalJSON(c)
}

// Scan decodes JSONB into the requirements.
func (c *CleaningRequirements) Scan(value any) error {
	return scanJSON(value, c)
}

// PropertyContact is the person to reach about a property.
type PropertyContact struct {
	Name                   string              `json:"name"`
	Email                  string              `json:"email"`
	Phone                  string              `json:"phone"`
	PreferredContactMethod enums.ContactMethod `json:"preferred_contact_method"`
}

// Value marshals the contact into JSON for Postgres.
func (p PropertyContact) Value() (driver.Value, error) {
	return marshalJSON(p)
}

// Scan decodes JSONB into the contact.
func (p *PropertyContact) Scan(value any) error {
	return scanJSON(value, p)
}
