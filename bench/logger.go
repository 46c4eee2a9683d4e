// SPDX-License-Identifier: MIT

package bench

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogMode selects the slog handler built by NewLogger.
type LogMode uint8

const (
	// LogText writes human-readable records to stderr at debug level.
	LogText LogMode = iota
	// LogJSON writes JSON records to stderr at info level.
	LogJSON
	// LogSilent discards everything.
	LogSilent
)

func (m LogMode) String() string {
	switch m {
	case LogText:
		return "text"
	case LogJSON:
		return "json"
	case LogSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogMode maps "text", "json" and "silent" (case-insensitive) to a LogMode.
func ParseLogMode(s string) (LogMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return LogText, nil
	case "json":
		return LogJSON, nil
	case "silent", "none":
		return LogSilent, nil
	default:
		return LogSilent, benchErrorf(s, ErrUnknownLogMode)
	}
}

// NewLogger returns a logger writing to stderr in the given mode.
func NewLogger(mode LogMode) *slog.Logger {
	return slog.New(buildHandler(mode, os.Stderr))
}

func buildHandler(mode LogMode, w io.Writer) slog.Handler {
	switch mode {
	case LogText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case LogJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(io.Discard, nil)
	}
}
