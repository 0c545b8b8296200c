// Package grid implements cell-level validation for tabular data editing.
//
// A grid is an unordered collection of [Cell] values, one per (column, row)
// pair. Each [Column] carries an ordered list of [Validator] values. Before an
// edit is committed, the caller asks [CellValidation] whether a proposed value
// would satisfy every validator configured on the cell's column:
//
//	report := grid.CellValidation(cells, cell, "b@x.com")
//	if !report.Valid {
//		for _, item := range report.Violations {
//			if !item.Result.Valid {
//				fmt.Println(item.Validator.Name, item.Result.Message)
//			}
//		}
//	}
//
// # Validators
//
// A [Validator] is a record holding an optional name, an optional
// IgnoreViolation flag, and a pure [ValidateFunc]. Ready-made validators are
// available through [Presets]:
//
//	email := &grid.Column{
//		BindTo: "email",
//		Type:   grid.ColumnTypeText,
//		Validators: []*grid.Validator{
//			grid.Presets.Required(),
//			grid.Presets.Regex(regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)),
//			grid.Presets.Unique().Advisory(),
//		},
//	}
//
// # Reports
//
// Validation failures are data, not errors. [CellValidation] always runs every
// validator, in order, and returns a [Violation] whose Valid field is the
// logical AND of all results. The IgnoreViolation flag is carried through the
// report untouched; deciding whether an advisory failure blocks an edit is up
// to the caller.
//
// # Concurrency
//
// Nothing in this package holds state between calls. [CellValidation] may be
// called from multiple goroutines as long as the cell collection and column
// configuration are not mutated concurrently. [ValidateAll] uses this to
// validate a whole grid in parallel.
package grid
