// Package metrics exposes Prometheus collectors for the engine, attached
// through the domain lifecycle hooks so the core stays instrumentation-free.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/ouro/pkg/domain"
)

// EngineMetrics holds Prometheus metrics for pipeline executions.
type EngineMetrics struct {
	pipeline string

	executions *prometheus.CounterVec   // by pipeline and outcome (closed/exhausted/error)
	steps      *prometheus.CounterVec   // by pipeline, from, to
	cycles     *prometheus.HistogramVec // cycles run per execution, by pipeline
	textLength *prometheus.GaugeVec     // last observed text length, by pipeline and label
}

// New creates and registers engine metrics with the provided registerer.
// A nil registerer disables metrics.
func New(reg prometheus.Registerer, pipeline string) (*EngineMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &EngineMetrics{
		pipeline: pipeline,
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ouro",
			Subsystem: "engine",
			Name:      "executions_total",
			Help:      "Total number of pipeline executions",
		}, []string{"pipeline", "outcome"}),

		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ouro",
			Subsystem: "engine",
			Name:      "steps_total",
			Help:      "Total number of applied transformation steps",
		}, []string{"pipeline", "from", "to"}),

		cycles: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ouro",
			Subsystem: "engine",
			Name:      "cycles_per_execution",
			Help:      "Number of full chain cycles run per execution",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}, []string{"pipeline"}),

		textLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ouro",
			Subsystem: "engine",
			Name:      "text_length",
			Help:      "Length of the text after the most recent step, per label",
		}, []string{"pipeline", "label"}),
	}

	collectors := []prometheus.Collector{m.executions, m.steps, m.cycles, m.textLength}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			// Already-registered collectors are fine when several engines
			// share one registry.
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}

	return m, nil
}

// Hooks returns lifecycle hooks feeding these collectors. Safe to call on
// a nil receiver, which yields empty hooks.
func (m *EngineMetrics) Hooks() domain.LifecycleHooks {
	if m == nil {
		return domain.LifecycleHooks{}
	}
	return domain.LifecycleHooks{
		OnStepApplied: func(_ context.Context, ev *domain.StepEvent) {
			m.steps.WithLabelValues(m.pipeline, ev.From, ev.To).Inc()
			m.textLength.WithLabelValues(m.pipeline, ev.To).Set(float64(ev.TextLength))
		},
	}
}

// RecordExecution records the terminal outcome of one Execute call.
// Safe to call on a nil receiver.
func (m *EngineMetrics) RecordExecution(result *domain.ExecutionResult, err error) {
	if m == nil {
		return
	}
	outcome := "exhausted"
	switch {
	case err != nil:
		outcome = "error"
	case result != nil && result.Closed:
		outcome = "closed"
	}
	m.executions.WithLabelValues(m.pipeline, outcome).Inc()
	if err == nil && result != nil {
		m.cycles.WithLabelValues(m.pipeline).Observe(float64(result.CyclesRun))
	}
}
