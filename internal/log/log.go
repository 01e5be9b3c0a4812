// Package log carries a slog.Logger through context so library code can
// log without holding a logger field everywhere.
package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/samber/lo"
)

type contextKey struct{}

var discardLogger = New(io.Discard, false)

func New(w io.Writer, debug bool) *slog.Logger {
	level := lo.Ternary(debug, slog.LevelDebug, slog.LevelInfo)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

func FromContextOrDiscard(ctx context.Context) *slog.Logger {
	if v, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return v
	}
	return discardLogger
}
