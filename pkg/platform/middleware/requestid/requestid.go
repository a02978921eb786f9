// Package requestid assigns a correlation ID to every request. Incoming
// X-Request-ID headers are honored so upstream proxies can stitch traces
// together; otherwise a fresh UUID is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"vigia/pkg/requestcontext"
)

const headerName = "X-Request-ID"

// Middleware injects the request ID into the context and echoes it on the
// response so clients can report it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerName, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
