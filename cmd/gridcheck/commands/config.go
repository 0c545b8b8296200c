package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/gridcheck/internal/config"
	"github.com/thoreinstein/gridcheck/internal/errors"
)

var configShowDefaults bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowDefaults, "defaults", false,
		"show the built-in defaults instead of the effective configuration")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gridcheck configuration",
	Long: `Inspect the gridcheck configuration.

Configuration is read from config.yaml in the current directory or the
gridcheck config directory, and any key can be overridden with a
GRIDCHECK_<KEY> environment variable (for example GRIDCHECK_STRICT=true).`,
	Run: func(c *cobra.Command, _ []string) {
		_ = c.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the effective configuration in YAML format, after defaults, the config file and environment overrides are applied.`,
	Example: `  # Show configuration
  gridcheck config show

  # Show the defaults, e.g. when the config file is invalid
  gridcheck config show --defaults`,
	Annotations: map[string]string{skipConfigCheck: "true"},
	Args:        cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		if configShowDefaults {
			return runConfigShow(c.OutOrStdout(), config.Default(), "")
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return runConfigShow(c.OutOrStdout(), currentConfig(), config.Used())
	},
}

func runConfigShow(w io.Writer, conf *config.Config, source string) error {
	if source != "" {
		fmt.Fprintf(w, "# %s\n", source)
	}

	data, err := yaml.Marshal(conf)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing config")
}
