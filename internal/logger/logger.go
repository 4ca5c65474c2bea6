// Package logger configures structured logging for the CLI. Diagnostics go
// to stderr as JSON so the report on stdout stays machine-readable.
package logger

import (
	"log/slog"
	"os"
)

// Init returns a JSON logger tagged with the command name and installs it
// as the slog default.
func Init(command string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	log := slog.New(handler).With(slog.String("command", command))
	slog.SetDefault(log)
	return log
}
