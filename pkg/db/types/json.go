package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// marshalJSON serializes a composite column value for Postgres JSONB.
func marshalJSON(v any) (driver.Value, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// scanJSON decodes a JSONB column into dest, accepting string or []byte input.
func scanJSON(value any, dest any) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("jsonb: unsupported scan type %T", value)
	}

	return json.Unmarshal(raw, dest)
}
