package schema

import (
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		in   any
		want any
	}{
		{"integer from string", Integer, "7", int64(7)},
		{"integer keeps leading zeros decimal", Integer, "010", int64(10)},
		{"integer from whole float text", Integer, "12.0", int64(12)},
		{"integer from whole float", Integer, float64(3), int64(3)},
		{"integer from json number", Integer, json.Number("7"), int64(7)},
		{"integer max from json number", Integer, json.Number("9223372036854775807"), int64(math.MaxInt64)},
		{"integer above float precision", Integer, json.Number("9007199254740993"), int64(9007199254740993)},
		{"float from json number", Float, json.Number("2.25"), 2.25},
		{"string keeps json number digits", String, json.Number("12345678901234567"), "12345678901234567"},
		{"symbol from json number", Symbol, json.Number("42"), "42"},
		{"boolean from json number", Boolean, json.Number("1"), true},
		{"float from string", Float, "2.50", 2.5},
		{"float from int", Float, 4, float64(4)},
		{"boolean yes", Boolean, "yes", true},
		{"boolean N", Boolean, "N", false},
		{"boolean native", Boolean, true, true},
		{"string from number", String, 42, "42"},
		{"symbol trims", Symbol, " active ", "active"},
		{"date from text", Date, "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"date drops time of day", Date, "2024-03-05T17:30:00Z", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"datetime in utc", DateTime, "2024-03-05T17:30:00+02:00", time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)},
		{"nil is zero", Integer, nil, int64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Coerce(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce_Failures(t *testing.T) {
	for _, tc := range []struct {
		typ Type
		in  any
	}{
		{Integer, "seven"},
		{Integer, "7.5"},
		{Integer, 7.9},
		{Integer, json.Number("7.9")},
		{Integer, json.Number("9223372036854775808")},
		{Integer, "1e19"},
		{Integer, float64(math.MaxInt64)},
		{Float, "n/a"},
		{Boolean, "maybe"},
		{Date, "yesterday"},
	} {
		_, err := tc.typ.Coerce(tc.in)
		assert.Error(t, err, "%s %v", tc.typ, tc.in)
	}
}

func TestBlank(t *testing.T) {
	assert.True(t, Integer.Blank(nil))
	assert.True(t, Integer.Blank("  "))
	assert.True(t, Date.Blank(""))
	assert.False(t, String.Blank(""))
	assert.False(t, Symbol.Blank(""))
	assert.False(t, Integer.Blank("0"))
}

func TestText(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", Date.Text(day))
	assert.Equal(t, "2024-03-05T00:00:00Z", DateTime.Text(day))
	assert.Equal(t, "", Date.Text(time.Time{}))
	assert.Equal(t, "2.5", Float.Text(2.5))
	assert.Equal(t, "100000", Float.Text(float64(100000)))
	assert.Equal(t, "7", Integer.Text(int64(7)))
	assert.Equal(t, "true", Boolean.Text(true))
}

func TestZero(t *testing.T) {
	assert.Equal(t, "", String.Zero())
	assert.Equal(t, int64(0), Integer.Zero())
	assert.Equal(t, float64(0), Float.Zero())
	assert.Equal(t, false, Boolean.Zero())
	assert.Equal(t, time.Time{}, DateTime.Zero())
	assert.Nil(t, RecordType(New("x").MustBuild()).Zero())
}
