package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a failure of an advisory validator.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return errors.Newf("unknown severity %q", b)
	}
	return nil
}

// Issue is one failed validator on one cell.
type Issue struct {
	Severity Severity `json:"severity"`
	// Field is the BindTo of the cell's column.
	Field string `json:"field"`
	// Column and Row locate the cell.
	Column    int    `json:"column"`
	Row       int    `json:"row"`
	Validator string `json:"validator,omitempty"`
	// Message may be empty when the validator gave none.
	Message string `json:"message,omitempty"`
	// Value is the candidate value that failed.
	Value any `json:"value"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	fmt.Fprintf(&sb, ": field %q row %d", i.Field, i.Row)
	if i.Validator != "" {
		fmt.Fprintf(&sb, " (%s)", i.Validator)
	}
	if i.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(i.Message)
	}
	return sb.String()
}

// Result aggregates the issues of one validation run.
type Result struct {
	// RunID identifies the run in logs and saved reports.
	RunID string `json:"run_id"`
	// Source is the grid document that was validated.
	Source string `json:"source,omitempty"`
	// Cells is the number of cells checked.
	Cells  int     `json:"cells"`
	Issues []Issue `json:"issues"`
}

// NewResult starts a result for a run over cells cells of source.
func NewResult(source string, cells int) *Result {
	return &Result{
		RunID:  uuid.NewString(),
		Source: source,
		Cells:  cells,
		Issues: []Issue{},
	}
}

// Classify decides the severity of a failed item.
func Classify(item grid.ViolationItem, strict bool) Severity {
	if item.Validator != nil && item.Validator.IgnoreViolation && !strict {
		return SeverityWarning
	}
	return SeverityError
}

// AddViolations records an issue for every failed item of every report.
func (r *Result) AddViolations(violations []grid.Violation, strict bool) {
	for _, v := range violations {
		r.AddViolation(v, strict)
	}
}

// AddViolation records an issue for every failed item of v.
func (r *Result) AddViolation(v grid.Violation, strict bool) {
	var field string
	column, row := -1, -1
	if v.Params.Column != nil {
		field = v.Params.Column.BindTo
		column = v.Params.Column.Index
	}
	if v.Params.Row != nil {
		row = v.Params.Row.Index
	}

	for _, item := range v.Failed() {
		var name string
		if item.Validator != nil {
			name = item.Validator.Name
		}
		r.Issues = append(r.Issues, Issue{
			Severity:  Classify(item, strict),
			Field:     field,
			Column:    column,
			Row:       row,
			Validator: name,
			Message:   item.Result.Message,
			Value:     issueValue(v.Params.Value),
		})
	}
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// Errors returns a slice of all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns a slice of all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

// issueValue returns v in a form encoding/json accepts. Non-finite floats
// become their textual form.
func issueValue(v grid.Value) any {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return fmt.Sprint(x)
		}
	case float32:
		if math.IsInf(float64(x), 0) || math.IsNaN(float64(x)) {
			return fmt.Sprint(x)
		}
	}
	return v
}
