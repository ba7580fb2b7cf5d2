package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB column support for the structured fields.

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src any, dst any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// Value implements driver.Valuer.
func (m ExerciseMetrics) Value() (driver.Value, error) { return jsonValue(m) }

// Scan implements sql.Scanner.
func (m *ExerciseMetrics) Scan(src any) error { return jsonScan(src, m) }

// Value implements driver.Valuer.
func (r SessionResults) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements sql.Scanner.
func (r *SessionResults) Scan(src any) error { return jsonScan(src, r) }

// Value implements driver.Valuer.
func (a Achievements) Value() (driver.Value, error) { return jsonValue(a) }

// Scan implements sql.Scanner.
func (a *Achievements) Scan(src any) error { return jsonScan(src, a) }
