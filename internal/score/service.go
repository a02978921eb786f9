package score

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"vigia/internal/audit"
	"vigia/internal/score/metrics"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/requestcontext"
)

// gatherTimeout bounds the concurrent signal reads; a coordinator whose
// profile cannot be read within this window fails scoring for that request
// only.
const gatherTimeout = 5 * time.Second

// AuditPublisher decouples the service from the audit pipeline for tests.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service recomputes a coordinator's composite score. The five signal reads
// run concurrently with shared cancellation; the profile write is best-effort
// and the audit entry is appended regardless of the write outcome.
type Service struct {
	profile ProfileSource
	writer  ScoreWriter
	auditor AuditPublisher
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewService(profile ProfileSource, writer ScoreWriter, auditor AuditPublisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		profile: profile,
		writer:  writer,
		auditor: auditor,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("vigia/internal/score"),
	}
}

// Recalculate gathers the five signals, computes the score, persists it
// best-effort, and appends the audit entry with the full breakdown.
func (s *Service) Recalculate(ctx context.Context, coordinatorID id.CoordinatorID) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "score.recalculate")
	defer span.End()

	if coordinatorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "coordinator id is required")
	}

	start := time.Now()
	inputs, err := s.gather(ctx, coordinatorID)
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "gather scoring signals", err)
	}

	total, breakdown := Calculate(inputs)
	result := &Result{
		CoordinatorID: coordinatorID,
		Score:         total,
		Breakdown:     breakdown,
		CalculatedAt:  requestcontext.Now(ctx),
	}

	// Best-effort write: a failure is visible to the caller via
	// score_persisted but never fails the recalculation.
	if err := s.writer.UpdateScore(ctx, coordinatorID, total); err != nil {
		s.logger.ErrorContext(ctx, "persist score failed",
			"request_id", requestcontext.RequestID(ctx),
			"coordinator_id", coordinatorID,
			"score", total,
			"error", err,
		)
	} else {
		result.ScorePersisted = true
	}

	s.auditor.Emit(ctx, audit.Event{
		CoordinatorID: coordinatorID,
		Action:        audit.ActionRecalcScore,
		Details: map[string]any{
			"score":                  total,
			"streak_component":       breakdown.Streak,
			"motivation_component":   breakdown.Motivation,
			"skills_component":       breakdown.Skills,
			"availability_component": breakdown.Availability,
			"geo_component":          breakdown.Geo,
			"persisted":              result.ScorePersisted,
		},
	})

	s.metrics.ObserveRecalculation(result.ScorePersisted, time.Since(start))
	span.SetAttributes(
		attribute.Int("score.total", total),
		attribute.Bool("score.persisted", result.ScorePersisted),
	)

	s.logger.InfoContext(ctx, "score recalculated",
		"request_id", requestcontext.RequestID(ctx),
		"coordinator_id", coordinatorID,
		"score", total,
		"persisted", result.ScorePersisted,
	)
	return result, nil
}

// gather runs the five signal reads concurrently with early cancellation on
// the first failure.
func (s *Service) gather(ctx context.Context, coordinatorID id.CoordinatorID) (Inputs, error) {
	ctx, cancel := context.WithTimeout(ctx, gatherTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var inputs Inputs

	g.Go(func() error {
		start := time.Now()
		streak, err := s.profile.GetStreakCount(ctx, coordinatorID)
		s.metrics.ObserveSignalLatency("streak", time.Since(start))
		if err != nil {
			return err
		}
		inputs.StreakCount = streak
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		declared, err := s.profile.GetMotivationDeclared(ctx, coordinatorID)
		s.metrics.ObserveSignalLatency("motivation", time.Since(start))
		if err != nil {
			return err
		}
		inputs.MotivationDeclared = declared
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		rating, err := s.profile.GetAverageSkillRating(ctx, coordinatorID)
		s.metrics.ObserveSignalLatency("skills", time.Since(start))
		if err != nil {
			return err
		}
		inputs.AverageSkillRating = rating
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		blocks, err := s.profile.CountAvailabilityBlocks(ctx, coordinatorID)
		s.metrics.ObserveSignalLatency("availability", time.Since(start))
		if err != nil {
			return err
		}
		inputs.AvailabilityBlocks = blocks
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		zones, err := s.profile.CountGeoZones(ctx, coordinatorID)
		s.metrics.ObserveSignalLatency("geo", time.Since(start))
		if err != nil {
			return err
		}
		inputs.GeoZones = zones
		return nil
	})

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return inputs, nil
}
