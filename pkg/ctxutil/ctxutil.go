// Package ctxutil carries request-scoped values through context: the request
// ID assigned by the middleware chain and the authenticated caller name taken
// from the service token.
package ctxutil

import (
	"context"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithCaller stores the authenticated caller name in the context.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromCtx extracts the caller name from the context.
// Returns "" and false if the value is missing or empty.
func CallerFromCtx(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerKey).(string)
	if !ok || caller == "" {
		return "", false
	}
	return caller, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
