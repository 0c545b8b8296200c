package gridfile

import (
	"regexp"
	"sort"
	"sync"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
)

// Sentinel errors for validator configuration.
var (
	// ErrUnknownValidator is returned when a document names a validator type
	// that is not registered.
	ErrUnknownValidator = errors.New("unknown validator type")

	// ErrInvalidPattern is returned when a regex validator has no pattern or
	// the pattern does not compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrValidatorAlreadyRegistered is returned when registering a type name
	// that is already in use.
	ErrValidatorAlreadyRegistered = errors.New("validator already registered")

	// ErrInvalidBuilder is returned when registering an empty name or a nil
	// builder.
	ErrInvalidBuilder = errors.New("invalid validator builder")
)

// Builder turns a validator declaration into a grid.Validator. Name and
// IgnoreViolation are applied by the Registry afterwards.
type Builder func(spec ValidatorSpec) (*grid.Validator, error)

// Registry maps validator type names to builders.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// DefaultRegistry returns a registry holding the required, regex and unique
// presets. Each call returns a fresh registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.builders[grid.PresetRequired] = buildRequired
	r.builders[grid.PresetRegex] = buildRegex
	r.builders[grid.PresetUnique] = buildUnique
	return r
}

// Register adds a builder under name.
func (r *Registry) Register(name string, b Builder) error {
	if name == "" || b == nil {
		return ErrInvalidBuilder
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; exists {
		return errors.Wrapf(ErrValidatorAlreadyRegistered, "%q", name)
	}

	r.builders[name] = b
	return nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the validator declared by spec.
func (r *Registry) Build(spec ValidatorSpec) (*grid.Validator, error) {
	r.mu.RLock()
	b, ok := r.builders[spec.Type]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownValidator, "%q", spec.Type)
	}

	v, err := b(spec)
	if err != nil {
		return nil, err
	}

	if spec.Name != "" {
		v = v.WithName(spec.Name)
	}
	if spec.IgnoreViolation {
		v = v.Advisory()
	}
	return v, nil
}

func buildRequired(ValidatorSpec) (*grid.Validator, error) {
	return grid.Presets.Required(), nil
}

func buildRegex(spec ValidatorSpec) (*grid.Validator, error) {
	if spec.Pattern == "" {
		return nil, errors.Wrap(ErrInvalidPattern, "pattern is required")
	}
	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "compiling %q", spec.Pattern), ErrInvalidPattern)
	}
	return grid.Presets.Regex(re), nil
}

func buildUnique(ValidatorSpec) (*grid.Validator, error) {
	return grid.Presets.Unique(), nil
}
