package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/gridcheck/cmd"
)

func TestVersionCommand(t *testing.T) {
	origVersion, origCommit, origDate := cmd.Version, cmd.Commit, cmd.Date
	t.Cleanup(func() {
		cmd.Version, cmd.Commit, cmd.Date = origVersion, origCommit, origDate
	})

	cmd.Version = "1.2.3"
	cmd.Commit = "abc1234"
	cmd.Date = "2026-01-02"

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })
	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	for _, want := range []string{"gridcheck version 1.2.3", "commit: abc1234", "built:  2026-01-02"} {
		if !strings.Contains(output, want) {
			t.Errorf("output = %q, want contain %q", output, want)
		}
	}

	if got, want := cmd.Info(), "1.2.3 (commit abc1234, built 2026-01-02)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
