package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigDir_Default(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")

	want := filepath.Join(ConfigHome(), AppName)
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
	if got, want := ConfigFile(), filepath.Join(dir, ConfigFileName); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestConfigHome_NotEmpty(t *testing.T) {
	if ConfigHome() == "" {
		t.Error("ConfigHome() should not be empty")
	}
}
