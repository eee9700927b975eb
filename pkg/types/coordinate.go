package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Coordinate is a latitude or longitude that clients send either as a JSON
// number or as a numeric string. Valid is false when the field was absent,
// null, or not numeric.
type Coordinate struct {
	Valid bool
	Value float64
}

// UnmarshalJSON implements json.Unmarshaler. Non-numeric input is recorded
// as invalid rather than failing the whole body.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	*c = Coordinate{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil
		}
		return c.parse(raw)
	}

	return c.parse(string(trimmed))
}

func (c *Coordinate) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	c.Valid = true
	c.Value = f
	return nil
}

// MarshalJSON renders the value or null.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// NewCoordinate builds a valid coordinate.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Valid: true, Value: v}
}
