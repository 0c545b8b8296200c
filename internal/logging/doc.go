// Package logging provides structured logging for the gridcheck CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("validating", "path", "grid.yaml")
//
// # Context
//
// Commands store their logger on the command context with [NewContext] and
// retrieve it with [FromContext], which falls back to [slog.Default].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
