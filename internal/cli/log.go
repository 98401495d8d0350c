// Package cli implements the closepack command-line interface.
//
// It wraps the closepack library in two commands: generate, which builds the
// configured stacking polytypes and writes their CIF/TOPAS files, and list,
// which prints the bundled polytype table. Generation parameters come from a
// TOML config file with sensible birnessite defaults.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger creates a logger writing to w, filtering at level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger carried by ctx, or the default logger
// when none was attached (e.g. in tests calling generate directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
