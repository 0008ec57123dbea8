// Package cli implements the treeseed command-line interface.
//
// The root command generates a random seed tree and writes it to
// DBInitial.json; the verify subcommand checks an existing document. The CLI
// is built using cobra and logs through charmbracelet/log on stderr, keeping
// stdout for the single confirmation line.
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

	"github.com/matzehuels/treeseed/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
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

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Generated 1000 nodes (1.234s)"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports generator events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnBuildStart(context.Context, int, uint64) {}

func (h logHooks) OnBuildComplete(_ context.Context, count, depth int, d time.Duration) {
	h.logger.Debug("built tree", "nodes", count, "depth", depth, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnExportComplete(_ context.Context, format, path string, size int64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "format", format, "path", path, "err", err)
		return
	}
	h.logger.Debug("wrote "+format, "path", path, "bytes", size, "duration", d.Round(time.Millisecond))
}

var _ observability.GeneratorHooks = logHooks{}
