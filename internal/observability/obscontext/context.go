// Package obscontext carries request-scoped correlation identifiers.
package obscontext

import "context"

type contextKey struct{ name string }

var requestIDKey = contextKey{"request_id"}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
