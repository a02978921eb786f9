package risk

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"vigia/internal/risk/metrics"
	dErrors "vigia/pkg/domain-errors"
	"vigia/pkg/requestcontext"
)

// DomainFailure reports one domain pipeline that could not be evaluated.
// Aggregation keeps going; the failure travels with the partial result.
type DomainFailure struct {
	Domain Domain `json:"domain"`
	Error  string `json:"error"`
}

// AggregateResult is the combined output of one aggregation pass. Verdict
// order across domains is not contractually meaningful; within a domain the
// source insertion order is preserved.
type AggregateResult struct {
	Verdicts []Verdict       `json:"verdicts"`
	Failed   []DomainFailure `json:"failed_domains,omitempty"`
}

// Partial reports whether at least one domain failed.
func (r *AggregateResult) Partial() bool { return len(r.Failed) > 0 }

// ActiveOnly returns the verdicts with severity above OK, preserving order.
func (r *AggregateResult) ActiveOnly() []Verdict {
	active := make([]Verdict, 0, len(r.Verdicts))
	for _, v := range r.Verdicts {
		if v.Severity > SeverityOK {
			active = append(active, v)
		}
	}
	return active
}

// Summary counts subjects per severity within each domain.
type Summary struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Domains     map[Domain]map[string]int `json:"domains"`
	Failed      []DomainFailure           `json:"failed_domains,omitempty"`
}

// Service is the alert aggregator. It fans out to the three domain
// evaluators concurrently, merges their verdicts, and keeps one failing
// domain from silencing the other two.
type Service struct {
	coordinators CoordinatorSource
	walks        WalkSource
	ledger       LedgerSource
	cache        SummaryCache
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

// NewService constructs the aggregator. cache may be nil.
func NewService(coordinators CoordinatorSource, walks WalkSource, ledger LedgerSource, cache SummaryCache, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		coordinators: coordinators,
		walks:        walks,
		ledger:       ledger,
		cache:        cache,
		logger:       logger,
		metrics:      m,
		tracer:       otel.Tracer("vigia/internal/risk"),
	}
}

// Evaluate runs one domain's full pipeline: batch fetch, then one verdict per
// record. Evaluation itself is pure; the only clock input is the
// request-scoped evaluated_at timestamp.
func (s *Service) Evaluate(ctx context.Context, domain Domain) ([]Verdict, error) {
	if !domain.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown domain "+string(domain))
	}

	ctx, span := s.tracer.Start(ctx, "risk.evaluate",
		trace.WithAttributes(attribute.String("risk.domain", string(domain))))
	defer span.End()

	start := time.Now()
	evaluatedAt := requestcontext.Now(ctx)

	var verdicts []Verdict
	var err error

	switch domain {
	case DomainCoordinators:
		var recs []CoordinatorRecord
		if recs, err = s.coordinators.ListCoordinators(ctx); err == nil {
			verdicts = make([]Verdict, 0, len(recs))
			for _, rec := range recs {
				verdicts = append(verdicts, EvaluateCoordinator(rec, evaluatedAt))
			}
		}
	case DomainWalks:
		var recs []WalkRecord
		if recs, err = s.walks.ListWalks(ctx); err == nil {
			verdicts = make([]Verdict, 0, len(recs))
			for _, rec := range recs {
				verdicts = append(verdicts, EvaluateWalk(rec, evaluatedAt))
			}
		}
	case DomainLedger:
		var evts []EconomicEvent
		if evts, err = s.ledger.ListEvents(ctx); err == nil {
			verdicts = make([]Verdict, 0, len(evts))
			for _, evt := range evts {
				verdicts = append(verdicts, EvaluateEvent(evt, evaluatedAt))
			}
		}
	}

	s.metrics.ObserveEvaluateLatency(string(domain), time.Since(start))
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "fetch "+string(domain)+" records", err)
	}

	for _, v := range verdicts {
		s.metrics.ObserveVerdict(string(domain), v.Severity.String())
	}
	span.SetAttributes(attribute.Int("risk.verdicts", len(verdicts)))
	return verdicts, nil
}

// AggregateAlerts evaluates all domains concurrently and concatenates the
// verdicts. A failing domain is recorded in Failed instead of aborting its
// siblings; only when every domain fails does the call return an error.
func (s *Service) AggregateAlerts(ctx context.Context) (*AggregateResult, error) {
	ctx, span := s.tracer.Start(ctx, "risk.aggregate")
	defer span.End()

	start := time.Now()
	domains := Domains()

	// One slot per domain; no shared mutable state between pipelines.
	results := make([][]Verdict, len(domains))
	errs := make([]error, len(domains))

	var wg sync.WaitGroup
	for i, domain := range domains {
		wg.Add(1)
		go func(i int, domain Domain) {
			defer wg.Done()
			results[i], errs[i] = s.Evaluate(ctx, domain)
		}(i, domain)
	}
	wg.Wait()

	out := &AggregateResult{}
	for i, domain := range domains {
		if errs[i] != nil {
			s.metrics.IncrementDomainFailure(string(domain))
			s.logger.ErrorContext(ctx, "domain evaluation failed",
				"request_id", requestcontext.RequestID(ctx),
				"domain", domain,
				"error", errs[i],
			)
			out.Failed = append(out.Failed, DomainFailure{Domain: domain, Error: errs[i].Error()})
			continue
		}
		out.Verdicts = append(out.Verdicts, results[i]...)
	}

	s.metrics.ObserveAggregateLatency(time.Since(start))
	span.SetAttributes(
		attribute.Int("risk.verdicts", len(out.Verdicts)),
		attribute.Int("risk.failed_domains", len(out.Failed)),
	)

	if len(out.Failed) == len(domains) {
		return nil, dErrors.New(dErrors.CodeUnavailable, "all domain evaluations failed")
	}
	return out, nil
}

// Summary aggregates and reduces to severity counts per domain. Results are
// served from the cache while fresh; a partial aggregate is never cached so a
// recovering domain shows up immediately.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetSummary(ctx); ok {
			return cached, nil
		}
	}

	agg, err := s.AggregateAlerts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		GeneratedAt: requestcontext.Now(ctx),
		Domains:     make(map[Domain]map[string]int, len(Domains())),
		Failed:      agg.Failed,
	}
	for _, domain := range Domains() {
		if failedDomain(agg.Failed, domain) {
			continue
		}
		counts := make(map[string]int, len(Severities()))
		for _, sev := range Severities() {
			counts[sev.String()] = 0
		}
		summary.Domains[domain] = counts
	}
	for _, v := range agg.Verdicts {
		summary.Domains[v.Domain][v.Severity.String()]++
	}

	if s.cache != nil && !agg.Partial() {
		s.cache.SetSummary(ctx, summary)
	}
	return summary, nil
}

// VerifyLedgerChain runs the strict verification mode over the full ledger.
func (s *Service) VerifyLedgerChain(ctx context.Context) (*ChainReport, error) {
	ctx, span := s.tracer.Start(ctx, "risk.verify_chain")
	defer span.End()

	events, err := s.ledger.ListEvents(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "fetch ledger events", err)
	}

	report := VerifyChain(events)
	s.metrics.AddChainViolations(len(report.Violations))
	if !report.OK {
		s.logger.WarnContext(ctx, "ledger chain verification failed",
			"request_id", requestcontext.RequestID(ctx),
			"total_events", report.Total,
			"violations", len(report.Violations),
		)
	}
	span.SetAttributes(attribute.Bool("risk.chain_ok", report.OK))
	return &report, nil
}

func failedDomain(failures []DomainFailure, domain Domain) bool {
	for _, f := range failures {
		if f.Domain == domain {
			return true
		}
	}
	return false
}
