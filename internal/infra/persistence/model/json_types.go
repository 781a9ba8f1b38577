package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSONStringSlice stores a []string as a JSONB column.
type JSONStringSlice []string

// Value implements driver.Valuer.
func (s JSONStringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string slice")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *JSONStringSlice) Scan(value any) error {
	if value == nil {
		*s = nil

		return nil
	}

	data, err := jsonBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(data, s), "failed to unmarshal string slice")
}

// JSONStringMap stores a map[string]string as a JSONB column.
type JSONStringMap map[string]string

// Value implements driver.Valuer.
func (m JSONStringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string map")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *JSONStringMap) Scan(value any) error {
	if value == nil {
		*m = nil

		return nil
	}

	data, err := jsonBytes(value)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(data, m), "failed to unmarshal string map")
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported JSONB source type %T", value)
	}
}
