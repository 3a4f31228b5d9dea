package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the logger for one App. Logs share outW with the report,
// so anything below the configured level is dropped to keep the table and
// the generated code readable. It never touches slog.Default.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
