// Package handler wires risk evaluation endpoints to the aggregator service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vigia/internal/risk"
	"vigia/pkg/platform/httputil"
	"vigia/pkg/requestcontext"
)

// Service defines the interface for risk operations.
type Service interface {
	Evaluate(ctx context.Context, domain risk.Domain) ([]risk.Verdict, error)
	AggregateAlerts(ctx context.Context) (*risk.AggregateResult, error)
	Summary(ctx context.Context) (*risk.Summary, error)
	VerifyLedgerChain(ctx context.Context) (*risk.ChainReport, error)
}

// Handler exposes the dashboard-facing risk endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a risk handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts risk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/alerts", h.HandleAlerts)
	r.Get("/alerts/summary", h.HandleSummary)
	r.Get("/risk/{domain}", h.HandleDomain)
	r.Get("/ledger/verify", h.HandleVerifyChain)
}

// alertsResponse carries the aggregate with an explicit partial marker so
// callers can tell a quiet system from a half-blind one.
type alertsResponse struct {
	Verdicts []risk.Verdict       `json:"verdicts"`
	Failed   []risk.DomainFailure `json:"failed_domains,omitempty"`
	Partial  bool                 `json:"partial"`
}

// HandleAlerts handles GET /alerts. By default only non-OK verdicts are
// returned; ?all=true includes healthy subjects.
func (h *Handler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	result, err := h.service.AggregateAlerts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "alert aggregation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	verdicts := result.ActiveOnly()
	if r.URL.Query().Get("all") == "true" {
		verdicts = result.Verdicts
	}

	h.logger.InfoContext(ctx, "alerts aggregated",
		"request_id", requestcontext.RequestID(ctx),
		"verdicts", len(verdicts),
		"failed_domains", len(result.Failed),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, alertsResponse{
		Verdicts: verdicts,
		Failed:   result.Failed,
		Partial:  result.Partial(),
	})
}

// HandleSummary handles GET /alerts/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleDomain handles GET /risk/{domain} for a single domain's verdicts.
func (h *Handler) HandleDomain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	domain := risk.Domain(chi.URLParam(r, "domain"))

	verdicts, err := h.service.Evaluate(ctx, domain)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"verdicts": verdicts})
}

// HandleVerifyChain handles GET /ledger/verify, the strict chain check.
func (h *Handler) HandleVerifyChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.service.VerifyLedgerChain(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}
