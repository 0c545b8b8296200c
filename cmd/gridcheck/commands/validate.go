package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/gridcheck/internal/config"
	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/grid"
	"github.com/thoreinstein/gridcheck/internal/gridfile"
	"github.com/thoreinstein/gridcheck/internal/logging"
	"github.com/thoreinstein/gridcheck/internal/validator"
	"github.com/thoreinstein/gridcheck/internal/watch"
	"github.com/thoreinstein/gridcheck/pkg/fileutil"
)

var (
	validateJSON   bool
	validateStrict bool
	validateWatch  bool
	validateOutput string
)

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat advisory (ignoreViolation) failures as errors")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false,
		"re-validate whenever the file changes")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "",
		"also write the JSON report to this file")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate every cell of a grid",
	Long: `Validate every stored cell of a grid document against the validators
configured on its column.

Failures of validators marked ignoreViolation are reported as warnings.
Use --strict (or strict: true in the config) to treat them as errors.

Exit codes:
  0 - No errors (warnings OK)
  1 - At least one error, or the grid could not be loaded`,
	Example: `  # Validate a grid
  gridcheck validate users.yaml

  # JSON output for CI/CD
  gridcheck validate users.toml --json

  # Keep validating while editing, saving a report each time
  gridcheck validate users.yaml --watch --output report.json

  See Also: gridcheck check, gridcheck columns`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		conf := currentConfig()
		opts := resolveReportOptions(conf, validateJSON, validateStrict)
		opts.output = validateOutput

		if validateWatch {
			return runValidateWatch(c.Context(), args[0], opts, conf.WatchDebounce, c.OutOrStdout())
		}
		return runValidate(c.Context(), args[0], opts, c.OutOrStdout())
	},
}

// reportOptions controls how a validation run is judged and rendered.
type reportOptions struct {
	format      validator.Format
	strict      bool
	concurrency int
	output      string
}

// resolveReportOptions merges command flags over the configuration. Flags
// can only switch JSON output and strict mode on.
func resolveReportOptions(conf *config.Config, jsonFlag, strictFlag bool) reportOptions {
	opts := reportOptions{
		format:      validator.Format(conf.Format),
		strict:      conf.Strict || strictFlag,
		concurrency: conf.Concurrency,
	}
	if jsonFlag {
		opts.format = validator.FormatJSON
	}
	return opts
}

func runValidate(ctx context.Context, path string, opts reportOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	g, err := gridfile.Load(ctx, path, nil)
	if err != nil {
		return errors.NewUserError(err, "Check the grid document; see: gridcheck validate --help")
	}

	var gridOpts []grid.Option
	if opts.concurrency > 0 {
		gridOpts = append(gridOpts, grid.WithConcurrency(opts.concurrency))
	}

	start := time.Now()
	violations, err := grid.ValidateAll(ctx, g.Cells, gridOpts...)
	if err != nil {
		return err
	}

	result := validator.NewResult(path, len(g.Cells))
	result.AddViolations(violations, opts.strict)

	logger.Info("validated grid",
		"run_id", result.RunID,
		"path", path,
		"cells", len(g.Cells),
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()),
		"duration", time.Since(start))

	if err := validator.NewReporter(w, opts.format).Report(result); err != nil {
		return err
	}

	if opts.output != "" {
		if err := fileutil.AtomicWriteJSON(opts.output, result.Report()); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing report %s", opts.output), "check that the output directory exists")
		}
		logger.Debug("wrote report", "path", opts.output)
	}

	if result.HasErrors() {
		return errors.ErrValidationFailed
	}
	return nil
}

// runValidateWatch validates once, then again after every change to path,
// until interrupted. Failed runs are logged, not returned.
func runValidateWatch(ctx context.Context, path string, opts reportOptions, debounce time.Duration, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.FromContext(ctx)

	run := func(ctx context.Context) {
		err := runValidate(ctx, path, opts, w)
		if err != nil && !errors.Is(err, errors.ErrValidationFailed) {
			logger.Error("validation run failed", "path", path, "error", err)
		}
	}

	watcher, err := watch.New(path, debounce, logger)
	if err != nil {
		return err
	}

	logger.Info("watching for changes", "path", watcher.Path(), "debounce", debounce)
	run(ctx)
	return watcher.Run(ctx, run)
}
