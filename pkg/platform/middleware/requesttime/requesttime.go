// Package requesttime provides middleware for request-scoped time. All
// evaluations within a single HTTP request share the same "now", so every
// verdict produced by one aggregation pass carries the same evaluated_at.
package requesttime

import (
	"net/http"
	"time"

	"vigia/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and stores
// it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
