package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbBytes normalizes what the driver hands a Scanner for a JSONB column.
func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("expected []byte or string, got %T", value)
	}
}

// Scan implements sql.Scanner for the features JSONB column.
func (f *Features) Scan(value interface{}) error {
	if value == nil {
		*f = Features{}
		return nil
	}
	raw, err := jsonbBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan features: %w", err)
	}
	if err := json.Unmarshal(raw, f); err != nil {
		return fmt.Errorf("failed to unmarshal features: %w", err)
	}
	return nil
}

// Value implements driver.Valuer, writing the features as a JSON document.
func (f Features) Value() (driver.Value, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the amenities JSONB column. NULL scans as
// no amenities.
func (a *Amenities) Scan(value interface{}) error {
	if value == nil {
		*a = Amenities{}
		return nil
	}
	raw, err := jsonbBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan amenities: %w", err)
	}
	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("failed to unmarshal amenities: %w", err)
	}
	return nil
}

// Value implements driver.Valuer. Amenities always store as an object, never NULL.
func (a Amenities) Value() (driver.Value, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amenities: %w", err)
	}
	return string(raw), nil
}
