// Package httptransport assembles the public HTTP surface. It should stay a
// thin wiring layer: handlers live with their modules, cross-cutting concerns
// live in middleware.
package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	availabilityhandler "vigia/internal/availability/handler"
	profilehandler "vigia/internal/profile/handler"
	riskhandler "vigia/internal/risk/handler"
	scorehandler "vigia/internal/score/handler"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/platform/middleware/coordauth"
	"vigia/pkg/platform/middleware/requestid"
	"vigia/pkg/platform/middleware/requesttime"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts.
type Deps struct {
	Risk         *riskhandler.Handler
	Score        *scorehandler.Handler
	Availability *availabilityhandler.Handler
	Profile      *profilehandler.Handler

	// Optional readiness checks, keyed by dependency name.
	Checks map[string]HealthChecker
}

// NewRouter wires all public endpoints. Dashboard reads are open; the
// /coordinator/* self-service group requires the coordinator identity header.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", handleHealth(deps.Checks))
	r.Handle("/metrics", promhttp.Handler())

	deps.Risk.Register(r)

	r.Group(func(r chi.Router) {
		r.Use(coordauth.Middleware)
		deps.Score.Register(r)
		deps.Availability.Register(r)
		deps.Profile.Register(r)
	})

	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		result := make(map[string]string, len(checks)+1)
		result["status"] = "ok"

		for name, check := range checks {
			if err := check.Health(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				result[name] = err.Error()
				result["status"] = "degraded"
				continue
			}
			result[name] = "ok"
		}
		httputil.WriteJSON(w, status, result)
	}
}
