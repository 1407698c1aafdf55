package types

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// HouseSettings bundles per-house booking defaults, persisted as JSONB.
type HouseSettings struct {
	// CheckInTime and CheckOutTime are HH:mm clock strings.
	CheckInTime     string          `json:"check_in_time"`
	CheckOutTime    string          `json:"check_out_time"`
	MinStay         int             `json:"min_stay"`
	MaxStay         int             `json:"max_stay"`
	CleaningFee     decimal.Decimal `json:"cleaning_fee"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}

// Value marshals the settings into JSON for Postgres.
func (h HouseSettings) Value() (driver.Value, error) {
	return marshalJSON(h)
}

// Scan decodes JSONB into the settings.
func (h *HouseSettings) Scan(value any) error {
	return scanJSON(value, h)
}

// HouseImage is a single gallery entry in a house's JSONB image list.
type HouseImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

// HouseImages persists the gallery as a JSONB array.
type HouseImages []HouseImage

// Value marshals the gallery into JSON for Postgres.
func (h HouseImages) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	return marshalJSON(h)
}

// Scan decodes JSONB into the gallery.
func (h *HouseImages) Scan(value any) error {
	return scanJSON(value, h)
}
