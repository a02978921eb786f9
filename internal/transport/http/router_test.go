package httptransport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/audit"
	auditstore "vigia/internal/audit/store"
	"vigia/internal/availability"
	availabilityhandler "vigia/internal/availability/handler"
	availabilitystore "vigia/internal/availability/store"
	"vigia/internal/profile"
	profilehandler "vigia/internal/profile/handler"
	profilestore "vigia/internal/profile/store"
	"vigia/internal/risk"
	riskhandler "vigia/internal/risk/handler"
	"vigia/internal/score"
	scorehandler "vigia/internal/score/handler"
	httptransport "vigia/internal/transport/http"
	id "vigia/pkg/domain"
	"vigia/pkg/testutil"
)

type staticProfile struct{}

func (staticProfile) GetStreakCount(context.Context, id.CoordinatorID) (int, error) { return 10, nil }
func (staticProfile) GetMotivationDeclared(context.Context, id.CoordinatorID) (bool, error) {
	return true, nil
}
func (staticProfile) GetAverageSkillRating(context.Context, id.CoordinatorID) (float64, error) {
	return 5, nil
}
func (staticProfile) CountAvailabilityBlocks(context.Context, id.CoordinatorID) (int, error) {
	return 1, nil
}
func (staticProfile) CountGeoZones(context.Context, id.CoordinatorID) (int, error) { return 1, nil }

type staticWriter struct{}

func (staticWriter) UpdateScore(context.Context, id.CoordinatorID, int) error { return nil }

type failingCheck struct{}

func (failingCheck) Health(context.Context) error { return errors.New("connection refused") }

func newTestRouter(t *testing.T, sources *risk.MemorySources, checks map[string]httptransport.HealthChecker) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	inbox := make(chan audit.Event, 16)
	publisher := audit.NewPublisher(inbox, logger)
	worker := audit.NewWorker(auditstore.NewMemoryStore(), nil, inbox, logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go worker.Run(ctx)

	riskSvc := risk.NewService(sources, sources, sources, nil, logger, nil)
	scoreSvc := score.NewService(staticProfile{}, staticWriter{}, publisher, logger, nil)
	availabilitySvc := availability.NewService(availabilitystore.NewMemoryStore(), publisher, logger)
	profileStore := profilestore.NewMemoryStore()
	profileSvc := profile.NewService(profileStore, profileStore, publisher, logger)

	return httptransport.NewRouter(httptransport.Deps{
		Risk:         riskhandler.New(riskSvc, logger),
		Score:        scorehandler.New(scoreSvc, logger),
		Availability: availabilityhandler.New(availabilitySvc, logger),
		Profile:      profilehandler.New(profileSvc, logger),
		Checks:       checks,
	})
}

func TestRouterAlertsEndpoint(t *testing.T) {
	sources := risk.NewMemorySources()
	sources.SetCoordinators([]risk.CoordinatorRecord{
		{CoordinatorID: id.NewCoordinatorID(), StreakCount: 0},
	})
	router := newTestRouter(t, sources, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body struct {
		Verdicts []risk.Verdict `json:"verdicts"`
		Partial  bool           `json:"partial"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Verdicts, 1)
	assert.Equal(t, risk.SeverityCritical, body.Verdicts[0].Severity)
	assert.False(t, body.Partial)
}

func TestRouterCoordinatorGroupRequiresIdentity(t *testing.T) {
	router := newTestRouter(t, risk.NewMemorySources(), nil)

	paths := []struct {
		method, path string
	}{
		{http.MethodPost, "/coordinator/score"},
		{http.MethodGet, "/coordinator/availability"},
		{http.MethodGet, "/coordinator/skills"},
		{http.MethodGet, "/coordinator/geo"},
	}
	for _, p := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestRouterScoreRoundTrip(t *testing.T) {
	router := newTestRouter(t, risk.NewMemorySources(), nil)

	req := testutil.AsCoordinator(
		httptest.NewRequest(http.MethodPost, "/coordinator/score", nil),
		id.NewCoordinatorID(),
	)
	rec := testutil.DoRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := testutil.UnmarshalResponse[score.Result](t, rec)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.ScorePersisted)
}

func TestRouterAvailabilityValidationSurfaced(t *testing.T) {
	router := newTestRouter(t, risk.NewMemorySources(), nil)

	req := testutil.AsCoordinator(
		testutil.NewJSONRequest(t, http.MethodPost, "/coordinator/availability", map[string]any{
			"availability": []availability.Block{
				{Day: "monday", Start: "09:00", End: "09:30"},
			},
		}),
		id.NewCoordinatorID(),
	)
	rec := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t, risk.NewMemorySources(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterHealthDegraded(t *testing.T) {
	checks := map[string]httptransport.HealthChecker{"redis": failingCheck{}}
	router := newTestRouter(t, risk.NewMemorySources(), checks)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}
