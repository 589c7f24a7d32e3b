package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/sujeethshingade/docster/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := RequestID(ctx); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// RequestID returns the request ID of ctx without assigning a new one.
func RequestID(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID)
	return id, ok
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// WithAttrs stores the context logger extended with args, so that every
// component called with the returned context logs them.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	return With(ctx, From(ctx).With(args...))
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns the time of the context's TimeFunc, or the current time.
// Generation and chat timestamps are taken from here so that tests can fix
// them.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies request ID and time function from src to dst.
// The logger is not copied; use With for it.
func InheritContextValues(dst, src context.Context) context.Context {
	if reqID, ok := RequestID(src); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}

	if timeFunc, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, timeFunc)
	}

	return dst
}
