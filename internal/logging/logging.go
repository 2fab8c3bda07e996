package logging

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init routes slog through a charmbracelet/log handler writing to w.
// Verbose lowers the level to debug; otherwise only warnings and errors
// are shown so normal runs stay quiet.
func Init(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: verbose,
		Prefix:          "gantt",
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return Logger
}
