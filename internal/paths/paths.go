package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home.
const AppName = "gridcheck"

// ConfigDirEnv overrides ConfigDir when set.
const ConfigDirEnv = "GRIDCHECK_CONFIG_DIR"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the gridcheck configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the default configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
