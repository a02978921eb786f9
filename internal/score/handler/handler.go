// Package handler exposes the score recalculation endpoint.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vigia/internal/score"
	id "vigia/pkg/domain"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for score operations.
type Service interface {
	Recalculate(ctx context.Context, coordinatorID id.CoordinatorID) (*score.Result, error)
}

// Handler exposes score recalculation for the authenticated coordinator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a score handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the score endpoint. The route group already requires the
// coordinator identity header.
func (h *Handler) Register(r chi.Router) {
	r.Post("/coordinator/score", h.HandleRecalculate)
}

// HandleRecalculate handles POST /coordinator/score.
func (h *Handler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coordinatorID := requestcontext.CoordinatorID(ctx)

	result, err := h.service.Recalculate(ctx, coordinatorID)
	if err != nil {
		h.logger.ErrorContext(ctx, "score recalculation failed",
			"request_id", requestcontext.RequestID(ctx),
			"coordinator_id", coordinatorID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
