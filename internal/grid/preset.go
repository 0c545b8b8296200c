package grid

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/spf13/cast"
)

// Preset names.
const (
	PresetRequired = "required"
	PresetRegex    = "regex"
	PresetUnique   = "unique"
)

// Failure messages reported by the presets.
const (
	MessageRequired      = "This field is required."
	MessageRegexNotText  = "Regex validation is only available for text type."
	MessageRegexMismatch = "Not an allowed format. Please check the input. (Allowed format: %s)"
	MessageNotUnique     = "This value is already used."
)

// Presets builds the ready-made validators.
var Presets = ValidatorPreset{}

// ValidatorPreset is the factory for built-in validators. Every method
// returns a fresh Validator that may be reused across any number of calls.
type ValidatorPreset struct{}

// Required rejects nil and the empty string, including empty values of named
// string types. Any other value, including 0, false and whitespace, is
// accepted.
func (ValidatorPreset) Required() *Validator {
	return &Validator{
		Name: PresetRequired,
		Validate: func(p Params) Result {
			valid := p.Value != nil
			if rv := reflect.ValueOf(p.Value); valid && rv.Kind() == reflect.String && rv.Len() == 0 {
				valid = false
			}
			return Result{Valid: valid, Message: MessageRequired}
		},
	}
}

// Regex accepts text values matching pattern. On a column that is not of
// type text it always fails.
func (ValidatorPreset) Regex(pattern *regexp.Regexp) *Validator {
	mismatch := fmt.Sprintf(MessageRegexMismatch, pattern.String())
	return &Validator{
		Name: PresetRegex,
		Validate: func(p Params) Result {
			if p.Column == nil || p.Column.Type != ColumnTypeText {
				return Result{Valid: false, Message: MessageRegexNotText}
			}
			return Result{
				Valid:   pattern.MatchString(stringify(p.Value)),
				Message: mismatch,
			}
		},
	}
}

// Unique rejects a value already stored in another row of the same logical
// field. Cells are grouped by their column's BindTo, and the row under edit
// is excluded by index. Only stored values are compared.
func (ValidatorPreset) Unique() *Validator {
	return &Validator{
		Name: PresetUnique,
		Validate: func(p Params) Result {
			if p.Column == nil {
				return Result{Valid: true, Message: MessageNotUnique}
			}
			for _, c := range p.AllCells {
				if c.Column == nil || c.Row == nil || c.Column.BindTo != p.Column.BindTo {
					continue
				}
				if p.Row != nil && c.Row.Index == p.Row.Index {
					continue
				}
				if sameValue(c.Value, p.Value) {
					return Result{Valid: false, Message: MessageNotUnique}
				}
			}
			return Result{Valid: true, Message: MessageNotUnique}
		},
	}
}

// stringify renders v as text for pattern matching. nil becomes "".
func stringify(v Value) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// sameValue reports whether a and b are equal. Numbers compare by value
// regardless of their Go type: two integers compare exactly, and a float on
// either side compares both as float64. Values that cannot be compared with
// == are never equal.
func sameValue(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumber(va) {
		return isNumber(vb) && sameNumber(va, vb)
	}
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

func sameNumber(a, b reflect.Value) bool {
	switch {
	case isFloat(a) || isFloat(b):
		return toFloat(a) == toFloat(b)
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case !isSigned(a) && !isSigned(b):
		return a.Uint() == b.Uint()
	case isSigned(a):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func isNumber(v reflect.Value) bool {
	return isFloat(v) || isSigned(v) || isUnsigned(v)
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}
