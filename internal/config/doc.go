// Package config provides configuration management for the gridcheck CLI.
//
// Configuration is read with Viper from config.yaml in the current directory
// or the gridcheck config directory (see package paths), and every key can be
// overridden with a GRIDCHECK_ environment variable:
//
//	version: 1
//	format: text          # text or json
//	strict: false         # treat advisory violations as errors
//	concurrency: 0        # 0 means GOMAXPROCS
//	watch_debounce: 250ms
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.Wrap(err, "loading config")
//	}
//
// Loaded configurations are validated automatically. [Validate] reports
// every bad field at once as [FieldError] values.
package config
