package internal

import (
	"context"
	"log/slog"

	"github.com/chainguard-dev/clog"
)

// NopLogger returns a logger that drops every record.
func NopLogger() *clog.Logger {
	return clog.New(slog.DiscardHandler)
}

// WithNopLogger returns a copy of ctx carrying a NopLogger, for callers that
// want no log output at all.
func WithNopLogger(ctx context.Context) context.Context {
	return clog.WithLogger(ctx, NopLogger())
}
