package gridfile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
)

func maxLength(n int) Builder {
	return func(ValidatorSpec) (*grid.Validator, error) {
		return &grid.Validator{
			Name: "max-length",
			Validate: func(p grid.Params) grid.Result {
				s, _ := p.Value.(string)
				if len(s) > n {
					return grid.Result{Message: "Too long."}
				}
				return grid.Result{Valid: true}
			},
		}, nil
	}
}

func TestDefaultRegistry_Names(t *testing.T) {
	got := DefaultRegistry().Names()
	assert.Equal(t, []string{grid.PresetRegex, grid.PresetRequired, grid.PresetUnique}, got)
}

func TestNewRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Names())

	_, err := r.Build(ValidatorSpec{Type: grid.PresetRequired})
	assert.True(t, errors.Is(err, ErrUnknownValidator))
}

func TestRegistry_Register(t *testing.T) {
	r := DefaultRegistry()
	require.NoError(t, r.Register("max-length", maxLength(3)))

	v, err := r.Build(ValidatorSpec{Type: "max-length"})
	require.NoError(t, err)
	assert.False(t, v.Validate(grid.Params{Value: "abcd"}).Valid)
	assert.True(t, v.Validate(grid.Params{Value: "abc"}).Valid)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, ErrInvalidBuilder, r.Register("", maxLength(1)))
	assert.Equal(t, ErrInvalidBuilder, r.Register("x", nil))

	require.NoError(t, r.Register("x", maxLength(1)))
	err := r.Register("x", maxLength(2))
	assert.True(t, errors.Is(err, ErrValidatorAlreadyRegistered), "got %v", err)
}

func TestRegistry_Build_AppliesOptions(t *testing.T) {
	r := DefaultRegistry()

	v, err := r.Build(ValidatorSpec{Type: grid.PresetRequired, Name: "must-have", IgnoreViolation: true})
	require.NoError(t, err)
	assert.Equal(t, "must-have", v.Name)
	assert.True(t, v.IgnoreViolation)

	plain, err := r.Build(ValidatorSpec{Type: grid.PresetRequired})
	require.NoError(t, err)
	assert.Equal(t, grid.PresetRequired, plain.Name)
	assert.False(t, plain.IgnoreViolation)
}

func TestRegistry_Build_Regex(t *testing.T) {
	r := DefaultRegistry()

	v, err := r.Build(ValidatorSpec{Type: grid.PresetRegex, Pattern: `^\d+$`})
	require.NoError(t, err)

	col := &grid.Column{Type: grid.ColumnTypeText}
	assert.True(t, v.Validate(grid.Params{Column: col, Value: "123"}).Valid)
	assert.False(t, v.Validate(grid.Params{Column: col, Value: "12a"}).Valid)
}

func TestRegistry_ConcurrentRegisterAndBuild(t *testing.T) {
	r := DefaultRegistry()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(string(rune('a'+i)), maxLength(i))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Build(ValidatorSpec{Type: grid.PresetUnique})
		}()
	}
	wg.Wait()

	assert.Len(t, r.Names(), 13)
}
