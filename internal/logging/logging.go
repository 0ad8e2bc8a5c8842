// Package logging sets up the process-wide slog logger for expunge and hands
// out component loggers. Log lines go to stderr so rendered results on stdout
// stay machine-readable.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the default logger. Output goes to w, or stderr when w is
// omitted. A format of "json" selects the JSON handler; anything else is text.
func Init(level slog.Level, format string, w ...io.Writer) {
	out := io.Writer(os.Stderr)
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		slog.SetDefault(slog.New(slog.NewJSONHandler(out, opts)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, opts)))
}

// ParseLevel maps a config level name onto a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger tagged with the component that owns it
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// Charge groups the identifying fields of a charge under a "charge" key
func Charge(id, statute string) slog.Attr {
	return slog.Group("charge", slog.String("id", id), slog.String("statute", statute))
}
