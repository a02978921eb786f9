// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
// Usage in services (read values):
//
//	coordID := requestcontext.CoordinatorID(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithCoordinatorID(ctx, coordID)
package requestcontext

import (
	"context"
	"time"

	id "vigia/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	coordinatorIDKey struct{}
	requestIDKey     struct{}
	requestTimeKey   struct{}
)

// CoordinatorID retrieves the authenticated coordinator ID from the context.
// Returns the zero value if not set.
func CoordinatorID(ctx context.Context) id.CoordinatorID {
	if coordID, ok := ctx.Value(coordinatorIDKey{}).(id.CoordinatorID); ok {
		return coordID
	}
	return id.CoordinatorID{}
}

// WithCoordinatorID injects a coordinator ID into the context.
func WithCoordinatorID(ctx context.Context, coordID id.CoordinatorID) context.Context {
	return context.WithValue(ctx, coordinatorIDKey{}, coordID)
}

// RequestID retrieves the correlation ID assigned to the current request.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now returns the request-scoped time if one was captured by middleware,
// falling back to the wall clock. Evaluations within one request share a
// single evaluated_at timestamp this way.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
