// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "mlfit"

// Metrics holds Prometheus metrics for fits. A nil *Metrics records
// nothing. A Metrics may be shared between Fitters, including
// Fitters used concurrently.
type Metrics struct {
	// Fits counts minimizations by outcome.
	// Labels: status (ok, error)
	Fits *prometheus.CounterVec

	// FitDuration measures the wall time of each minimization.
	FitDuration prometheus.Histogram

	// LossEvaluations counts evaluations of the likelihood.
	LossEvaluations prometheus.Counter

	// BoundaryFallbacks counts uncertainty searches that could
	// not bracket the Δloss = 0.5 crossing and fell back to the
	// given boundary.
	BoundaryFallbacks prometheus.Counter

	// Toys counts generated toy experiments.
	Toys prometheus.Counter
}

// NewMetrics creates fit metrics and registers them with reg. If reg
// is nil, the metrics are not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Fits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fits_total",
			Help:      "Number of likelihood minimizations by status.",
		}, []string{"status"}),
		FitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fit_duration_seconds",
			Help:      "Wall time of likelihood minimizations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		LossEvaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loss_evaluations_total",
			Help:      "Number of negative log likelihood evaluations.",
		}),
		BoundaryFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "boundary_fallbacks_total",
			Help:      "Number of uncertainty bounds that fell back to the given boundary.",
		}),
		Toys: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "toys_total",
			Help:      "Number of generated toy experiments.",
		}),
	}
}

func (m *Metrics) observeFit(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Fits.WithLabelValues(status).Inc()
	m.FitDuration.Observe(d.Seconds())
}

func (m *Metrics) observeLoss() {
	if m == nil {
		return
	}
	m.LossEvaluations.Inc()
}

func (m *Metrics) observeFallback() {
	if m == nil {
		return
	}
	m.BoundaryFallbacks.Inc()
}

func (m *Metrics) observeToy() {
	if m == nil {
		return
	}
	m.Toys.Inc()
}
