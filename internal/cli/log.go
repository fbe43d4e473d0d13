// Package cli implements the dastra command-line interface.
//
// Each subcommand demonstrates one of the library's packages on
// concrete input: sorting runs, pattern matches, Huffman coding,
// graph analysis, hash probing, expression evaluation and the
// Josephus ring.
//
// All commands support --verbose (-v) for debug-level logging.
// Loggers travel through context.Context so subcommands never reach
// for a global.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a timestamped logger writing to w at the given
// level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey keeps this package's context keys collision-free.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger, falling back to the default
// logger when the context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
