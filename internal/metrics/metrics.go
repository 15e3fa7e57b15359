// Package metrics records per-projection counters on a private Prometheus
// registry and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hypernet/projection"
)

const (
	namespace  = "hypernet"
	labelKind  = "projection"
	labelPhase = "phase"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	registry *prometheus.Registry

	linksEmitted  *prometheus.CounterVec
	linksDropped  *prometheus.CounterVec
	failures      *prometheus.CounterVec
	vertices      *prometheus.GaugeVec
	states        *prometheus.GaugeVec
	duration      *prometheus.HistogramVec
	phaseDuration *prometheus.GaugeVec
}

// New creates and registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		linksEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_emitted_total",
			Help:      "Arcs written per projection.",
		}, []string{labelKind}),
		linksDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_dropped_total",
			Help:      "Candidate arcs discarded by the sparsification threshold.",
		}, []string{labelKind}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projection_failures_total",
			Help:      "Projections that returned an error.",
		}, []string{labelKind}),
		vertices: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertices",
			Help:      "Physical vertices in the last network per projection.",
		}, []string{labelKind}),
		states: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "states",
			Help:      "State vertices in the last network per projection.",
		}, []string{labelKind}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "projection_duration_seconds",
			Help:      "Wall time of one projection.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{labelKind}),
		phaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of the last run per pipeline phase.",
		}, []string{labelPhase}),
	}

	m.registry.MustRegister(
		m.linksEmitted, m.linksDropped, m.failures,
		m.vertices, m.states, m.duration, m.phaseDuration,
	)
	return m
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one projection outcome. Nil receivers are no-ops.
func (m *Metrics) Observe(r projection.Result) {
	if m == nil {
		return
	}
	kind := r.Kind.String()
	m.duration.WithLabelValues(kind).Observe(r.Duration.Seconds())
	if r.Err != nil || r.Network == nil {
		m.failures.WithLabelValues(kind).Inc()
		return
	}

	s := r.Network.Stats()
	m.linksEmitted.WithLabelValues(kind).Add(float64(s.Links))
	m.linksDropped.WithLabelValues(kind).Add(float64(s.Dropped))
	m.vertices.WithLabelValues(kind).Set(float64(s.Vertices))
	m.states.WithLabelValues(kind).Set(float64(s.States))
}

// ObservePhase records the wall time of a pipeline phase ("parse", "flow", "project").
func (m *Metrics) ObservePhase(phase string, seconds float64) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Set(seconds)
}

// WriteTextfile writes the registry to path in the text exposition format.
// The write is atomic (temp file + rename).
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
