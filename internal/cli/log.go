// Package cli implements the mosaic command-line interface.
//
// The commands read split-tree layouts and update batches from files (or
// stdin with "-"), run one layout operation, and write the result in the
// configured document format. Operation commands print the updates they
// compute; with --apply they print the resulting tree instead.
//
// # Commands
//
//   - build: Create a balanced layout from leaf keys
//   - leaves, corner, resolve, boxes: Query a layout
//   - apply: Apply an update batch to a layout
//   - insert, remove, hide, expand, drag: Compute structural updates
//   - dot: Draw the split tree with Graphviz
//   - edit: Edit a layout interactively in the terminal
//   - serve: Run the HTTP transform service
//   - watch: Re-apply updates whenever the input files change
//   - cache: Inspect or clear the rendered diagram cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered svg (412ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
