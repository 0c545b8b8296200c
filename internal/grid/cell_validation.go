package grid

import (
	"context"
	"runtime"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// ViolationItem is the outcome of one validator in a report.
type ViolationItem struct {
	Valid     bool
	Validator *Validator
	Result    Result
}

// Violation is the aggregate report for one proposed value.
type Violation struct {
	// Valid is true iff every item's result is valid.
	Valid bool
	// Params is the context every validator received.
	Params Params
	// Violations holds one item per configured validator, in column order.
	Violations []ViolationItem
}

// Failed returns the items whose result is invalid, in order.
func (v Violation) Failed() []ViolationItem {
	var out []ViolationItem
	for _, item := range v.Violations {
		if !item.Result.Valid {
			out = append(out, item)
		}
	}
	return out
}

// CellValidation runs every validator configured on cell's column against
// newValue and folds the results into a single report.
//
// Validators run in configuration order and all of them run, even after a
// failure. The cell collection is copied once and shared by every validator
// call; nothing is written back to it.
func CellValidation(allCells []Cell, cell Cell, newValue Value) Violation {
	return cellValidation(slices.Clone(allCells), cell, newValue)
}

func cellValidation(snapshot []Cell, cell Cell, newValue Value) Violation {
	var validators []*Validator
	if cell.Column != nil {
		validators = cell.Column.Validators
	}

	params := Params{
		Column:   cell.Column,
		Row:      cell.Row,
		Value:    newValue,
		AllCells: snapshot,
	}

	violations := make([]ViolationItem, 0, len(validators))
	valid := true
	for _, v := range validators {
		result := v.Validate(params)
		violations = append(violations, ViolationItem{
			Valid:     result.Valid,
			Validator: v,
			Result:    result,
		})
		valid = valid && result.Valid
	}

	return Violation{
		Valid:      valid,
		Params:     params,
		Violations: violations,
	}
}

// Option configures ValidateAll.
type Option func(*options)

type options struct {
	concurrency int
}

// WithConcurrency limits how many cells are validated at once.
// Values below 1 mean runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// ValidateAll validates every cell against its own stored value.
//
// The returned reports are in the same order as cells. The only error is
// the context's, if it is cancelled before all cells are done.
func ValidateAll(ctx context.Context, cells []Cell, opts ...Option) ([]Violation, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	snapshot := slices.Clone(cells)
	out := make([]Violation, len(snapshot))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range snapshot {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = cellValidation(snapshot, snapshot[i], snapshot[i].Value)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "validating grid")
	}

	return out, nil
}

// Invalid returns the reports that did not pass.
func Invalid(violations []Violation) []Violation {
	var out []Violation
	for _, v := range violations {
		if !v.Valid {
			out = append(out, v)
		}
	}
	return out
}
