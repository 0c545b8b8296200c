// Package validator turns cell validation reports into pass/fail results for
// the command line.
//
// The grid engine reports every failing validator but never decides whether
// a failure blocks an edit. This package applies that policy: a failure of an
// advisory validator (IgnoreViolation) is a [SeverityWarning], every other
// failure is a [SeverityError]. Strict mode promotes warnings to errors.
//
//	result := validator.NewResult("grid.yaml", len(cells))
//	result.AddViolations(violations, strict)
//	if result.HasErrors() {
//		// reject
//	}
//
// A [Reporter] renders a Result as colored text or JSON.
package validator
