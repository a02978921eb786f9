// Package handler exposes the weekly schedule endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vigia/internal/availability"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for schedule operations.
type Service interface {
	List(ctx context.Context, coordinatorID id.CoordinatorID) ([]availability.Block, error)
	Replace(ctx context.Context, coordinatorID id.CoordinatorID, blocks []availability.Block) error
}

// Handler exposes the schedule for the authenticated coordinator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an availability handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the schedule endpoints. The route group already requires
// the coordinator identity header.
func (h *Handler) Register(r chi.Router) {
	r.Get("/coordinator/availability", h.HandleList)
	r.Post("/coordinator/availability", h.HandleReplace)
}

// replaceRequest is the wire shape the panel submits.
type replaceRequest struct {
	Availability []availability.Block `json:"availability"`
}

func (r replaceRequest) Validate() error {
	if r.Availability == nil {
		return dErrors.New(dErrors.CodeBadRequest, "availability must be an array")
	}
	return nil
}

// HandleList handles GET /coordinator/availability.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blocks, err := h.service.List(ctx, requestcontext.CoordinatorID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"availability": blocks})
}

// HandleReplace handles POST /coordinator/availability, replacing the full
// schedule after batch validation.
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[replaceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Replace(ctx, requestcontext.CoordinatorID(ctx), req.Availability); err != nil {
		h.logger.ErrorContext(ctx, "availability replace failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"blocks": len(req.Availability)})
}
