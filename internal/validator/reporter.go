package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/gridcheck/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// maxValueWidth bounds how many runes of a cell value text reports print.
const maxValueWidth = 50

// Report is the JSON form of a Result.
type Report struct {
	RunID    string  `json:"run_id"`
	Source   string  `json:"source,omitempty"`
	Valid    bool    `json:"valid"`
	Cells    int     `json:"cells"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	Issues   []Issue `json:"issues"`
}

// Report summarizes r. Valid is true when there are no errors.
func (r *Result) Report() Report {
	errs, warns := len(r.Errors()), len(r.Warnings())
	issues := r.Issues
	if issues == nil {
		issues = []Issue{}
	}
	return Report{
		RunID:    r.RunID,
		Source:   r.Source,
		Valid:    errs == 0,
		Cells:    r.Cells,
		Errors:   errs,
		Warnings: warns,
		Issues:   issues,
	}
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result.Report()), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warnings := result.Warnings()

	subject := "Validation"
	if result.Source != "" {
		subject = result.Source
	}

	switch {
	case len(errs) == 0 && len(warnings) == 0:
		fmt.Fprintf(r.out, "%s %s: %d cell(s) valid\n", color.GreenString("✓"), subject, result.Cells)
		return nil
	case len(errs) == 0:
		fmt.Fprintf(r.out, "%s %s: passed with %s\n\n",
			color.YellowString("!"), subject, color.YellowString("%d warning(s)", len(warnings)))
	default:
		summary := []string{color.RedString("%d error(s)", len(errs))}
		if len(warnings) > 0 {
			summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
		}
		fmt.Fprintf(r.out, "%s %s: failed with %s\n\n", color.RedString("✗"), subject, strings.Join(summary, ", "))
	}

	if len(errs) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, i := range errs {
			r.printIssue(i, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, i := range warnings {
			r.printIssue(i, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

// printIssue writes one line:  • field row N: message (validator) [value]
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(printer(i.Field))
	fmt.Fprintf(&sb, " row %d: ", i.Row)

	if i.Message != "" {
		sb.WriteString(i.Message)
	} else {
		sb.WriteString("invalid value")
	}

	if i.Validator != "" {
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(%s)", i.Validator))
	}

	valStr := "<empty>"
	if i.Value != nil && i.Value != "" {
		valStr = fmt.Sprintf("%v", i.Value)
	}
	if runes := []rune(valStr); len(runes) > maxValueWidth {
		valStr = string(runes[:maxValueWidth-3]) + "..."
	}
	sb.WriteString(dim.Sprintf(" [%s]", valStr))

	fmt.Fprintln(r.out, sb.String())
}
