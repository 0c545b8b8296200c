package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
	"github.com/thoreinstein/gridcheck/internal/gridfile"
	"github.com/thoreinstein/gridcheck/internal/logging"
	"github.com/thoreinstein/gridcheck/internal/validator"
)

var (
	checkColumn      string
	checkRow         int
	checkValue       string
	checkNull        bool
	checkJSON        bool
	checkStrict      bool
	checkInteractive bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkColumn, "column", "c", "",
		"column to edit, by bindTo or index")
	checkCmd.Flags().IntVarP(&checkRow, "row", "r", -1,
		"row index of the cell to edit")
	checkCmd.Flags().StringVar(&checkValue, "value", "",
		"proposed new value, parsed according to the column type")
	checkCmd.Flags().BoolVar(&checkNull, "null", false,
		"propose clearing the cell")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output results as JSON")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false,
		"treat advisory (ignoreViolation) failures as errors")
	checkCmd.Flags().BoolVarP(&checkInteractive, "interactive", "i", false,
		"pick the cell with a fuzzy finder")
	checkCmd.MarkFlagsMutuallyExclusive("value", "null")
	checkCmd.MarkFlagsOneRequired("value", "null")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a proposed edit to one cell",
	Long: `Check a proposed new value for one cell without changing the grid.

The value is validated against the validators of the cell's column, with
the rest of the grid as stored. Number columns parse the value as a number
and boolean columns as true/false; other columns take it as text.

Exit codes:
  0 - The edit is acceptable (warnings OK)
  1 - The edit violates at least one blocking validator`,
	Example: `  # Would this email be accepted in row 2?
  gridcheck check users.yaml --column email --row 2 --value bob@example.com

  # Would clearing the cell be accepted?
  gridcheck check users.yaml --column 0 --row 2 --null

  # Pick the cell interactively
  gridcheck check users.yaml -i --value bob@example.com

  See Also: gridcheck validate`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if !checkInteractive && (checkColumn == "" || checkRow < 0) {
			return errors.NewUserError(errors.New("no cell selected"), "use --column and --row, or --interactive")
		}

		opts := checkOptions{
			reportOptions: resolveReportOptions(currentConfig(), checkJSON, checkStrict),
			column:        checkColumn,
			row:           checkRow,
			value:         checkValue,
			null:          checkNull,
		}
		if checkInteractive {
			opts.pick = pickCellInteractive
		}
		return runCheck(c.Context(), args[0], opts, c.OutOrStdout())
	},
}

// checkOptions selects the cell and candidate value of a check.
type checkOptions struct {
	reportOptions
	column string
	row    int
	value  string
	null   bool
	// pick, when set, chooses the cell instead of column and row. It
	// returns fuzzyfinder.ErrAbort when the user cancels.
	pick func(cells []grid.Cell) (int, error)
}

func runCheck(ctx context.Context, path string, opts checkOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	g, err := gridfile.Load(ctx, path, nil)
	if err != nil {
		return errors.NewUserError(err, "Check the grid document; see: gridcheck validate --help")
	}

	cell, ok, err := selectCell(g, opts)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var candidate grid.Value
	if !opts.null {
		candidate, err = gridfile.ParseValue(cell.Column.Type, opts.value)
		if err != nil {
			return errors.NewUserError(err, fmt.Sprintf("column %q holds %s values", cell.Column.BindTo, cell.Column.Type))
		}
	}

	violation := grid.CellValidation(g.Cells, cell, candidate)

	result := validator.NewResult(path, 1)
	result.AddViolation(violation, opts.strict)

	logger.Debug("checked cell",
		"run_id", result.RunID,
		"column", cell.Column.BindTo,
		"row", cell.Row.Index,
		"valid", violation.Valid)

	if opts.format != validator.FormatJSON {
		fmt.Fprintf(w, "%s row %d: %s -> %s\n",
			cell.Column.Label(), cell.Row.Index, displayValue(cell.Value), displayValue(candidate))
		for _, item := range violation.Violations {
			mark := "✓"
			if !item.Valid {
				mark = "✗"
			}
			fmt.Fprintf(w, "  %s %s\n", mark, item.Validator.Name)
		}
		fmt.Fprintln(w)
	}

	if err := validator.NewReporter(w, opts.format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.ErrValidationFailed
	}
	return nil
}

// selectCell resolves the cell to check. It reports false when the user
// aborted the interactive picker.
func selectCell(g *gridfile.Grid, opts checkOptions) (grid.Cell, bool, error) {
	if opts.pick != nil {
		if len(g.Cells) == 0 {
			return grid.Cell{}, false, errors.NewUserError(errors.Wrap(errors.ErrNotFound, "grid has no cells"), "add rows to the grid first")
		}
		idx, err := opts.pick(g.Cells)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return grid.Cell{}, false, nil
			}
			return grid.Cell{}, false, errors.Wrap(err, "interactive cell selection failed")
		}
		return g.Cells[idx], true, nil
	}

	col, err := g.Column(opts.column)
	if err != nil {
		return grid.Cell{}, false, errors.NewUserError(err, "list columns with: gridcheck columns "+g.Source)
	}
	cell, err := g.Cell(col, opts.row)
	if err != nil {
		return grid.Cell{}, false, errors.NewUserError(err, fmt.Sprintf("the grid has %d row(s)", len(g.Rows)))
	}
	return cell, true, nil
}

func pickCellInteractive(cells []grid.Cell) (int, error) {
	return fuzzyfinder.Find(
		cells,
		func(i int) string {
			c := cells[i]
			return fmt.Sprintf("%s[%d]: %s", c.Column.BindTo, c.Row.Index, displayValue(c.Value))
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			c := cells[i]
			names := make([]string, 0, len(c.Column.Validators))
			for _, v := range c.Column.Validators {
				names = append(names, validatorLabel(v))
			}
			return fmt.Sprintf("Column: %s (%s)\nType: %s\nRow: %d\nValue: %s\n\nValidators:\n  %s",
				c.Column.Label(),
				c.Column.BindTo,
				c.Column.Type,
				c.Row.Index,
				displayValue(c.Value),
				strings.Join(names, "\n  "),
			)
		}),
	)
}

// displayValue renders a cell value for terminal output.
func displayValue(v grid.Value) string {
	switch x := v.(type) {
	case nil:
		return "<null>"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func validatorLabel(v *grid.Validator) string {
	if v.IgnoreViolation {
		return v.Name + " (advisory)"
	}
	return v.Name
}
