// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/masq"
)

// ParseLevel converts LOG_LEVEL values to a slog level. Unknown values
// select info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ReplaceAttr redacts credentials from log attributes.
func ReplaceAttr() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("api_key"),
		masq.WithFieldName("apikey"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldPrefix("secret"),
	)
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: ReplaceAttr(),
	}))
}
