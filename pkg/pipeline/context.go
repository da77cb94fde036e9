package pipeline

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for a request-scoped logger.
const loggerKey ctxKey = 0

// WithLogger returns a context carrying l. The Runner logs through it
// instead of its own logger, so request-scoped fields (such as a request
// ID) appear on pipeline log lines.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// logger returns the logger attached to ctx, or the runner's logger.
func (r *Runner) logger(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	return r.Logger
}
