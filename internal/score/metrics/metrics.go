// Package metrics provides observability for the scoring module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for score recalculation.
type Metrics struct {
	// Completed recalculations, labelled by persistence outcome
	Recalculations *prometheus.CounterVec

	// End-to-end recalculation latency including the concurrent reads
	RecalcLatency prometheus.Histogram

	// Per-signal read latency during the concurrent gather
	SignalLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all scoring metrics registered.
func New() *Metrics {
	return &Metrics{
		Recalculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigia_score_recalculations_total",
			Help: "Total score recalculations by persistence outcome",
		}, []string{"persisted"}),

		RecalcLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigia_score_recalc_duration_seconds",
			Help:    "Duration of one full score recalculation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		SignalLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vigia_score_signal_read_duration_seconds",
			Help:    "Duration of one signal read during the concurrent gather",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"signal"}),
	}
}

// ObserveRecalculation records one completed recalculation.
func (m *Metrics) ObserveRecalculation(persisted bool, d time.Duration) {
	if m != nil {
		label := "false"
		if persisted {
			label = "true"
		}
		m.Recalculations.WithLabelValues(label).Inc()
		m.RecalcLatency.Observe(d.Seconds())
	}
}

// ObserveSignalLatency records the duration of one signal read.
func (m *Metrics) ObserveSignalLatency(signal string, d time.Duration) {
	if m != nil {
		m.SignalLatency.WithLabelValues(signal).Observe(d.Seconds())
	}
}
