// Package commands implements the CLI commands for gridcheck.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/gridcheck/cmd"
	"github.com/thoreinstein/gridcheck/internal/config"
	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/logging"
)

// debugEnv raises the log level when no -v flag is given: 1 or true means
// debug, 2 means trace.
const debugEnv = "GRIDCHECK_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// skipConfigCheck is the command annotation that lets a command run with an
// invalid configuration.
const skipConfigCheck = "gridcheck/skip-config-check"

// cfg is the loaded configuration; nil until initConfig succeeds.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or the gridcheck config directory)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("gridcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

// currentConfig returns the loaded configuration, or defaults when commands
// run without initConfig (as in tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "gridcheck",
	Short: "Validate grid data against per-column rules",
	Long: `gridcheck validates the cells of a data grid against the validators
configured on each column: required values, regular expression formats and
uniqueness within a field.

A grid is a YAML, TOML or JSON document listing columns (with their
validators) and rows. gridcheck can validate every stored cell, or check a
single proposed edit before it is written.

Validators marked ignoreViolation are advisory: their failures are reported
as warnings and do not fail the run unless --strict is given.`,
	Example: `  # Validate every cell of a grid
  gridcheck validate users.yaml

  # Check a proposed edit
  gridcheck check users.yaml --column email --row 2 --value bob@example.com

  # List the columns and their validators
  gridcheck columns users.yaml

  See Also: gridcheck config show`,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error {
		if err := setupLogging(c); err != nil {
			return err
		}

		// Skip config errors for help, version and commands that report
		// the configuration themselves
		if c.Name() == "help" || c.Name() == "version" || c.Annotations[skipConfigCheck] == "true" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(c *cobra.Command, _ []string) {
		_ = c.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			v = logging.VerbosityFromDebugEnv(os.Getenv(debugEnv))
		}
		level = logging.LevelFromVerbosity(v)
	}

	logCfg := logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: c.ErrOrStderr(),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		logCfg.File = f
	}

	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	logger.Debug("gridcheck starting", "build", cmd.Info(), "command", c.CommandPath())

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
