package validator

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/gridcheck/internal/grid"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSeverity_Text(t *testing.T) {
	data, err := json.Marshal(SeverityWarning)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))

	var s Severity
	require.NoError(t, json.Unmarshal([]byte(`"error"`), &s))
	assert.Equal(t, SeverityError, s)

	assert.Error(t, json.Unmarshal([]byte(`"fatal"`), &s))
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "full",
			issue: Issue{Severity: SeverityError, Field: "email", Row: 2, Validator: "required", Message: "This field is required."},
			want:  `error: field "email" row 2 (required): This field is required.`,
		},
		{
			name:  "no message",
			issue: Issue{Severity: SeverityWarning, Field: "code", Row: 0, Validator: "custom"},
			want:  `warning: field "code" row 0 (custom)`,
		},
		{
			name:  "unnamed validator",
			issue: Issue{Severity: SeverityError, Field: "code", Row: 1, Message: "bad"},
			want:  `error: field "code" row 1: bad`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.Error())
		})
	}
}

func TestClassify(t *testing.T) {
	blocking := grid.ViolationItem{Validator: grid.Presets.Required()}
	advisory := grid.ViolationItem{Validator: grid.Presets.Unique().Advisory()}

	assert.Equal(t, SeverityError, Classify(blocking, false))
	assert.Equal(t, SeverityError, Classify(blocking, true))
	assert.Equal(t, SeverityWarning, Classify(advisory, false))
	assert.Equal(t, SeverityError, Classify(advisory, true))
	assert.Equal(t, SeverityError, Classify(grid.ViolationItem{}, false))
}

// duplicateGrid has two rows with the same code. The code column requires a
// value and wants it unique, but only advisorily.
func duplicateGrid() []grid.Cell {
	code := &grid.Column{
		Index:  0,
		BindTo: "code",
		Type:   grid.ColumnTypeText,
		Validators: []*grid.Validator{
			grid.Presets.Required(),
			grid.Presets.Unique().Advisory(),
		},
	}
	return []grid.Cell{
		{Column: code, Row: &grid.Row{Index: 0}, Value: "A"},
		{Column: code, Row: &grid.Row{Index: 1}, Value: "A"},
		{Column: code, Row: &grid.Row{Index: 2}, Value: nil},
	}
}

func TestResult_AddViolations(t *testing.T) {
	cells := duplicateGrid()
	violations := make([]grid.Violation, 0, len(cells))
	for _, c := range cells {
		violations = append(violations, grid.CellValidation(cells, c, c.Value))
	}

	t.Run("advisory failures are warnings", func(t *testing.T) {
		r := NewResult("codes.yaml", len(cells))
		r.AddViolations(violations, false)

		require.Len(t, r.Errors(), 1)
		assert.Equal(t, Issue{
			Severity:  SeverityError,
			Field:     "code",
			Column:    0,
			Row:       2,
			Validator: grid.PresetRequired,
			Message:   grid.MessageRequired,
		}, r.Errors()[0])

		warnings := r.Warnings()
		require.Len(t, warnings, 2)
		assert.Equal(t, 0, warnings[0].Row)
		assert.Equal(t, 1, warnings[1].Row)
		assert.Equal(t, "A", warnings[0].Value)
		assert.Equal(t, grid.MessageNotUnique, warnings[0].Message)
	})

	t.Run("strict promotes warnings", func(t *testing.T) {
		r := NewResult("codes.yaml", len(cells))
		r.AddViolations(violations, true)

		assert.Len(t, r.Errors(), 3)
		assert.False(t, r.HasWarnings())
	})

	t.Run("valid reports add nothing", func(t *testing.T) {
		r := NewResult("", 0)
		r.AddViolation(grid.CellValidation(cells, cells[0], "B"), false)

		assert.Empty(t, r.Issues)
		assert.False(t, r.HasErrors())
	})
}

func TestNewResult(t *testing.T) {
	r := NewResult("grid.yaml", 4)

	_, err := uuid.Parse(r.RunID)
	assert.NoError(t, err, "RunID should be a UUID")
	assert.NotEqual(t, r.RunID, NewResult("grid.yaml", 4).RunID)
	assert.NotNil(t, r.Issues)
	assert.Equal(t, 4, r.Cells)
}

func TestResult_NilSafety(t *testing.T) {
	var r *Result

	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())
	assert.Nil(t, r.Errors())
	assert.Nil(t, r.Warnings())
}

func TestResult_AddViolation_NonFiniteValues(t *testing.T) {
	col := &grid.Column{
		BindTo:     "code",
		Type:       grid.ColumnTypeText,
		Validators: []*grid.Validator{grid.Presets.Regex(regexp.MustCompile(`^\d+$`))},
	}
	cell := grid.Cell{Column: col, Row: &grid.Row{Index: 0}}

	tests := []struct {
		name  string
		value grid.Value
		want  string
	}{
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
		{"not a number", math.NaN(), "NaN"},
		{"float32 infinity", float32(math.Inf(1)), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult("codes.yaml", 1)
			r.AddViolation(grid.CellValidation([]grid.Cell{cell}, cell, tt.value), false)
			require.Len(t, r.Issues, 1)
			assert.Equal(t, tt.want, r.Issues[0].Value)

			var buf bytes.Buffer
			require.NoError(t, NewReporter(&buf, FormatJSON).Report(r))

			var decoded Report
			require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
			require.Len(t, decoded.Issues, 1)
			assert.Equal(t, tt.want, decoded.Issues[0].Value)
		})
	}
}
