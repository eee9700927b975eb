package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		value float64
	}{
		{name: "number", input: `{"lat":21.0285}`, valid: true, value: 21.0285},
		{name: "numeric string", input: `{"lat":"105.8542"}`, valid: true, value: 105.8542},
		{name: "zero", input: `{"lat":0}`, valid: true, value: 0},
		{name: "null", input: `{"lat":null}`},
		{name: "missing", input: `{}`},
		{name: "empty string", input: `{"lat":""}`},
		{name: "garbage string", input: `{"lat":"north"}`},
		{name: "bool", input: `{"lat":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Lat Coordinate `json:"lat"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &body))
			assert.Equal(t, tt.valid, body.Lat.Valid)
			assert.Equal(t, tt.value, body.Lat.Value)
		})
	}
}

func TestCoordinateMarshal(t *testing.T) {
	out, err := json.Marshal(map[string]Coordinate{"a": NewCoordinate(1.5), "b": {}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(out))
}
