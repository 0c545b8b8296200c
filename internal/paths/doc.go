// Package paths resolves the directories gridcheck reads its own
// configuration from.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux the configuration directory is ~/.config/gridcheck; on macOS it is
// ~/Library/Application Support/gridcheck.
//
// The GRIDCHECK_CONFIG_DIR environment variable overrides the directory
// entirely, which keeps tests and CI runs away from the user's real config.
package paths
