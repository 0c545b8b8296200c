package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces colored, terminal-friendly output.
	FormatText Format = "text"
	// FormatJSON produces one JSON object per record.
	FormatJSON Format = "json"
)

// LevelTrace is below slog.LevelDebug and is enabled by -vvv.
const LevelTrace = slog.LevelDebug - 4

// Config describes the logger built for a gridcheck invocation.
type Config struct {
	// Level is the minimum level for every sink.
	Level slog.Level
	// Format selects the encoding of Output. File is always JSON.
	Format Format
	// Output receives the primary log stream. Defaults to os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every record (--log-file).
	File io.Writer
}

// New builds a logger from cfg. An unknown Format falls back to
// FormatText.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = NewHandler(output, opts)
	}

	if cfg.File != nil {
		handler = NewMultiHandler(handler, slog.NewJSONHandler(cfg.File, opts))
	}

	return slog.New(handler)
}

// NewDiscard creates a logger that discards all output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromVerbosity maps a -v count to a log level:
// 0 is Warn, 1 is Info, 2 is Debug, 3 or more is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// VerbosityFromDebugEnv maps the value of GRIDCHECK_DEBUG to a -v count.
// "1" and "true" mean debug, "2" means trace, anything else is 0.
func VerbosityFromDebugEnv(val string) int {
	switch val {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a Debug level logger writing to t.Log, so grid loads and
// validation runs show their log lines when a test fails or runs with -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
