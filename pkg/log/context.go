package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx retrieves the logger from the context, or the global logger.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}

// WithStr extends the context logger with one string field and returns both
// the new context and the extended logger.
func WithStr(ctx context.Context, key, value string) (context.Context, zerolog.Logger) {
	l := Ctx(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, l), l
}
