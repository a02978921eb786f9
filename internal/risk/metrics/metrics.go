// Package metrics provides observability for the risk module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for evaluation and aggregation.
type Metrics struct {
	// Verdicts produced, by domain and severity
	Verdicts *prometheus.CounterVec

	// Per-domain fetch+evaluate latency
	EvaluateLatency *prometheus.HistogramVec

	// Full aggregation latency including the concurrent fan-out
	AggregateLatency prometheus.Histogram

	// Domain pipelines that failed during aggregation
	DomainFailures *prometheus.CounterVec

	// Strict chain verification violations found
	ChainViolations prometheus.Counter
}

// New creates a Metrics instance with all risk module metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_risk_verdicts_total",
			Help: "Total verdicts produced by domain and severity",
		}, []string{"domain", "severity"}),

		EvaluateLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vigia_risk_evaluate_duration_seconds",
			Help:    "Duration of per-domain fetch and evaluation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"domain"}),

		AggregateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigia_risk_aggregate_duration_seconds",
			Help:    "Duration of full alert aggregation across all domains",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		DomainFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_risk_domain_failures_total",
			Help: "Aggregation passes in which a domain pipeline failed",
		}, []string{"domain"}),

		ChainViolations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vigia_risk_chain_violations_total",
			Help: "Integrity violations reported by strict chain verification",
		}),
	}
}

// ObserveVerdict records one produced verdict.
func (m *Metrics) ObserveVerdict(domain, severity string) {
	if m != nil {
		m.Verdicts.WithLabelValues(domain, severity).Inc()
	}
}

// ObserveEvaluateLatency records the duration of one domain's pipeline.
func (m *Metrics) ObserveEvaluateLatency(domain string, d time.Duration) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(domain).Observe(d.Seconds())
	}
}

// ObserveAggregateLatency records the total aggregation duration.
func (m *Metrics) ObserveAggregateLatency(d time.Duration) {
	if m != nil {
		m.AggregateLatency.Observe(d.Seconds())
	}
}

// IncrementDomainFailure records a failed domain pipeline.
func (m *Metrics) IncrementDomainFailure(domain string) {
	if m != nil {
		m.DomainFailures.WithLabelValues(domain).Inc()
	}
}

// AddChainViolations records violations found by a verification pass.
func (m *Metrics) AddChainViolations(n int) {
	if m != nil && n > 0 {
		m.ChainViolations.Add(float64(n))
	}
}
