package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wedding"

// PrometheusMetrics implements port.PipelineMetrics on a dedicated registry
type PrometheusMetrics struct {
	registry         *prometheus.Registry
	strategyAttempts *prometheus.CounterVec
	strategyDuration *prometheus.HistogramVec
	compressions     *prometheus.CounterVec
	uploads          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the pipeline collectors and gauges reading the gate
func NewPrometheusMetrics(gate port.TranscodeGate) (*PrometheusMetrics, error) {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetrics{
		registry: registry,
		strategyAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transcode",
			Name:      "strategy_attempts_total",
			Help:      "Transcode strategy attempts by strategy and result.",
		}, []string{"strategy", "success"}),
		strategyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "transcode",
			Name:      "strategy_duration_seconds",
			Help:      "Duration of transcode strategy attempts.",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"strategy"}),
		compressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "compressions_total",
			Help:      "Compression runs by media kind and whether output was compressed.",
		}, []string{"kind", "compressed"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "uploads_total",
			Help:      "Upload requests by outcome.",
		}, []string{"outcome"}),
	}

	toRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.strategyAttempts,
		m.strategyDuration,
		m.compressions,
		m.uploads,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "transcode",
			Name:      "gate_in_flight",
			Help:      "Transcode slots currently held.",
		}, func() float64 { return float64(gate.InFlight()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "transcode",
			Name:      "gate_limit",
			Help:      "Configured transcode slots.",
		}, func() float64 { return float64(gate.Limit()) }),
	}
	for _, c := range toRegister {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) ObserveStrategy(strategy string, success bool, duration time.Duration) {
	m.strategyAttempts.WithLabelValues(strategy, strconv.FormatBool(success)).Inc()
	m.strategyDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) ObserveCompression(kind domain.MediaKind, compressed bool) {
	m.compressions.WithLabelValues(string(kind), strconv.FormatBool(compressed)).Inc()
}

func (m *PrometheusMetrics) ObserveUpload(outcome string) {
	m.uploads.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
