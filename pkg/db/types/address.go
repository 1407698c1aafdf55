package types

import "database/sql/driver"

// Address is a postal address persisted as JSONB.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Value marshals the address into JSON for Postgres.
func (a Address) Value() (driver.Value, error) {
	return marshalJSON(a)
}

// Scan decodes JSONB into the address.
func (a *Address) Scan(value any) error {
	return scanJSON(value, a)
}

// GeoPoint is an optional latitude/longitude pair persisted as JSONB.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Value marshals the point into JSON for Postgres.
func (g GeoPoint) Value() (driver.Value, error) {
	return marshalJSON(g)
}

// Scan decodes JSONB into the point.
func (g *GeoPoint) Scan(value any) error {
	return scanJSON(value, g)
}
