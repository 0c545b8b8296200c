package config

import (
	"fmt"

	"github.com/thoreinstein/gridcheck/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates an unknown report format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNegative indicates a numeric field that must not be negative.
	ErrNegative = errors.New("must not be negative")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: cfg.Version, Err: ErrUnsupportedVersion})
	}

	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, &FieldError{Field: "format", Value: cfg.Format, Err: ErrInvalidFormat})
	}

	if cfg.Concurrency < 0 {
		errs = append(errs, &FieldError{Field: "concurrency", Value: cfg.Concurrency, Err: ErrNegative})
	}

	if cfg.WatchDebounce < 0 {
		errs = append(errs, &FieldError{Field: "watch_debounce", Value: cfg.WatchDebounce, Err: ErrNegative})
	}

	return errs
}

// FieldError represents an error for a specific config key.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
