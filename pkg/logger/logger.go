package logger

import (
	"log/slog"
	"os"
)

var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init replaces the default text logger with the JSON handler used in
// deployments. Packages that log before main runs still get sane output.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
