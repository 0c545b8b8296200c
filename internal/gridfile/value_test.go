package gridfile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		colType grid.ColumnType
		raw     string
		want    grid.Value
		wantErr bool
	}{
		{name: "text", colType: grid.ColumnTypeText, raw: "hello", want: "hello"},
		{name: "text keeps digits", colType: grid.ColumnTypeText, raw: "007", want: "007"},
		{name: "number integer", colType: grid.ColumnTypeNumber, raw: "42", want: int64(42)},
		{name: "number decimal", colType: grid.ColumnTypeNumber, raw: "-1.5", want: -1.5},
		{name: "number large integer", colType: grid.ColumnTypeNumber, raw: "9007199254740993", want: int64(9007199254740993)},
		{name: "number exponent", colType: grid.ColumnTypeNumber, raw: "1e3", want: 1000.0},
		{name: "number invalid", colType: grid.ColumnTypeNumber, raw: "forty", wantErr: true},
		{name: "boolean true", colType: grid.ColumnTypeBoolean, raw: "true", want: true},
		{name: "boolean zero", colType: grid.ColumnTypeBoolean, raw: "0", want: false},
		{name: "boolean invalid", colType: grid.ColumnTypeBoolean, raw: "maybe", wantErr: true},
		{name: "date stays text", colType: grid.ColumnTypeDate, raw: "2024-01-02", want: "2024-01-02"},
		{name: "empty number", colType: grid.ColumnTypeNumber, raw: "", want: ""},
		{name: "empty boolean", colType: grid.ColumnTypeBoolean, raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.colType, tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidValue), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want grid.Value
	}{
		{"nil", nil, nil},
		{"string", "x", "x"},
		{"int", 3, int64(3)},
		{"int64", int64(-7), int64(-7)},
		{"int64 beyond float precision", int64(9007199254740993), int64(9007199254740993)},
		{"uint8", uint8(9), int64(9)},
		{"uint64 beyond int64", uint64(1 << 63), uint64(1 << 63)},
		{"float32", float32(0.5), 0.5},
		{"json integer", json.Number("12"), int64(12)},
		{"json decimal", json.Number("1.5"), 1.5},
		{"float64", 1.25, 1.25},
		{"bool", true, true},
		{"time", when, "2024-01-02T03:04:05Z"},
		{"toml date", toml.LocalDate{Year: 2024, Month: 1, Day: 2}, "2024-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}
