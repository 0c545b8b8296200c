package config

import (
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/gridcheck/internal/errors"
	"github.com/thoreinstein/gridcheck/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (GRIDCHECK_STRICT, ...).
const EnvPrefix = "GRIDCHECK"

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultWatchDebounce is how long validate --watch waits after the last
// file event before re-validating.
const DefaultWatchDebounce = 250 * time.Millisecond

// Config represents the top-level configuration structure.
type Config struct {
	Version       int           `mapstructure:"version" yaml:"version"`
	Format        string        `mapstructure:"format" yaml:"format"`
	Strict        bool          `mapstructure:"strict" yaml:"strict"`
	Concurrency   int           `mapstructure:"concurrency" yaml:"concurrency"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Version:       1,
		Format:        FormatText,
		WatchDebounce: DefaultWatchDebounce,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("format", def.Format)
	viper.SetDefault("strict", def.Strict)
	viper.SetDefault("concurrency", def.Concurrency)
	viper.SetDefault("watch_debounce", def.WatchDebounce)
}

// Load reads and validates the configuration.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the search paths from Init are used and a
// missing file falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && path == "":
			// implicit load, defaults apply
		case missing:
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the config file viper read, or "" when defaults were used.
func Used() string {
	return viper.ConfigFileUsed()
}
