// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/pkg/model"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record].
// It uses the same attribute keys as the request logging middleware so logs
// written by handlers and services can be correlated with the request. Not
// every use of the logger happens inside an HTTP request, so missing keys are
// fine.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	// public routes do not have a user in the context
	if user, ok := model.GetUserFromContext(ctx); ok {
		r.AddAttrs(slog.Group(middleware.RequestLoggerKeyUser,
			slog.Uint64("id", uint64(user.ID)),
			slog.String("role", string(user.Role)),
		))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(h.Handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return New(h.Handler.WithGroup(name))
}
