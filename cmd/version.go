// Package cmd holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/gridcheck/cmd.Version=v0.2.0" ./cmd/gridcheck
package cmd

import "fmt"

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Info describes the build on one line.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
