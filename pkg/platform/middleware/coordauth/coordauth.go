// Package coordauth resolves the acting coordinator for self-service
// endpoints. Authentication itself lives in the surrounding product; by the
// time requests reach this service the coordinator identity arrives as the
// x-coordinator-id header set by the gateway.
package coordauth

import (
	"net/http"

	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

const headerName = "x-coordinator-id"

// Middleware requires a valid coordinator ID header and injects it into the
// request context. Requests without one are rejected before reaching handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerName)
		if raw == "" {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing "+headerName+" header"))
			return
		}
		coordID, err := id.ParseCoordinatorID(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.Wrap(dErrors.CodeBadRequest, "invalid coordinator id", err))
			return
		}
		ctx := requestcontext.WithCoordinatorID(r.Context(), coordID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
