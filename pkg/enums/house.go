package enums

import "fmt"

// HouseStatus maps to the house_status enum in Postgres.
type HouseStatus string

const (
	HouseStatusActive      HouseStatus = "active"
	HouseStatusInactive    HouseStatus = "inactive"
	HouseStatusMaintenance HouseStatus = "maintenance"
	HouseStatusSold        HouseStatus = "sold"
)

var validHouseStatuses = []HouseStatus{
	HouseStatusActive,
	HouseStatusInactive,
	HouseStatusMaintenance,
	HouseStatusSold,
}

// String implements fmt.Stringer.
func (s HouseStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known HouseStatus.
func (s HouseStatus) IsValid() bool {
	for _, candidate := range validHouseStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseHouseStatus converts raw input into a HouseStatus.
func ParseHouseStatus(value string) (HouseStatus, error) {
	for _, candidate := range validHouseStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid house status %q", value)
}
