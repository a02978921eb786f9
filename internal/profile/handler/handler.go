// Package handler exposes the skills and geo-zone endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vigia/internal/profile"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for profile operations.
type Service interface {
	ListSkills(ctx context.Context, coordinatorID id.CoordinatorID) ([]profile.Skill, error)
	UpsertSkill(ctx context.Context, coordinatorID id.CoordinatorID, skill profile.Skill) error
	ListZones(ctx context.Context, coordinatorID id.CoordinatorID) ([]string, error)
	ReplaceZones(ctx context.Context, coordinatorID id.CoordinatorID, zones []string) ([]string, error)
}

// Handler exposes skills and zones for the authenticated coordinator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a profile handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the profile endpoints. The route group already requires
// the coordinator identity header.
func (h *Handler) Register(r chi.Router) {
	r.Get("/coordinator/skills", h.HandleListSkills)
	r.Post("/coordinator/skills", h.HandleUpsertSkill)
	r.Get("/coordinator/geo", h.HandleListZones)
	r.Post("/coordinator/geo", h.HandleReplaceZones)
}

type skillRequest struct {
	Name   string `json:"skill_name"`
	Rating int    `json:"rating"`
}

func (r skillRequest) Validate() error {
	// Full validation lives in the service; the DTO only rejects an
	// obviously empty submission early.
	if r.Name == "" && r.Rating == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "skill_name and rating are required")
	}
	return nil
}

type zonesRequest struct {
	Zones []string `json:"zones"`
}

func (r zonesRequest) Validate() error {
	if r.Zones == nil {
		return dErrors.New(dErrors.CodeBadRequest, "zones must be an array")
	}
	return nil
}

// HandleListSkills handles GET /coordinator/skills.
func (h *Handler) HandleListSkills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills, err := h.service.ListSkills(ctx, requestcontext.CoordinatorID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"skills": skills})
}

// HandleUpsertSkill handles POST /coordinator/skills.
func (h *Handler) HandleUpsertSkill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[skillRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	skill := profile.Skill{Name: req.Name, Rating: req.Rating}
	if err := h.service.UpsertSkill(ctx, requestcontext.CoordinatorID(ctx), skill); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, skill)
}

// HandleListZones handles GET /coordinator/geo.
func (h *Handler) HandleListZones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	zones, err := h.service.ListZones(ctx, requestcontext.CoordinatorID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"zones": zones})
}

// HandleReplaceZones handles POST /coordinator/geo, replacing the full zone
// set after de-duplication.
func (h *Handler) HandleReplaceZones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[zonesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	zones, err := h.service.ReplaceZones(ctx, requestcontext.CoordinatorID(ctx), req.Zones)
	if err != nil {
		h.logger.ErrorContext(ctx, "zone replace failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"zones": zones})
}
