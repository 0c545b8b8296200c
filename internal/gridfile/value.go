package gridfile

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
)

// ErrInvalidValue is returned when raw input does not parse as the
// column's type.
var ErrInvalidValue = errors.New("invalid value")

// ParseValue turns command line input into a candidate value for a column
// of type t. Number columns yield int64 for decimal integers and float64
// otherwise, boolean columns yield bool and every other type keeps the
// string. Empty input stays the empty string
// for every type.
func ParseValue(t grid.ColumnType, raw string) (grid.Value, error) {
	if raw == "" {
		return raw, nil
	}

	switch t {
	case grid.ColumnTypeNumber:
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i, nil
		}
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidValue, "%q is not a number", raw)
		}
		return f, nil
	case grid.ColumnTypeBoolean:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidValue, "%q is not a boolean", raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}

// normalize maps decoder-specific scalars onto one representation so the
// same document yields the same values in every format: numbers become
// int64 or float64, and dates become their textual form. Unsigned integers
// that do not fit int64 are kept as uint64.
func normalize(v any) grid.Value {
	switch x := v.(type) {
	case int, int8, int16, int32, uint8, uint16, uint32:
		return cast.ToInt64(x)
	case int64:
		return x
	case uint:
		return normalizeUint(uint64(x))
	case uint64:
		return normalizeUint(x)
	case float32:
		return cast.ToFloat64(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339)
	case toml.LocalDate:
		return x.String()
	case toml.LocalDateTime:
		return x.String()
	case toml.LocalTime:
		return x.String()
	default:
		return v
	}
}

func normalizeUint(u uint64) grid.Value {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}
