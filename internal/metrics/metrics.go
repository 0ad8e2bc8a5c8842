package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for classification and evaluation.
// All methods are safe on a nil receiver so callers can run without metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Classifications by charge type
	ChargesClassified *prometheus.CounterVec

	// Verdicts by charge type and status
	Evaluations *prometheus.CounterVec

	// Per-charge failures by kind: "statute", "ruling", "date", "other"
	ChargeErrors *prometheus.CounterVec

	// Classification cache lookups by result: "hit", "miss"
	CacheLookups *prometheus.CounterVec

	// Time to classify and evaluate one charge
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance on its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ChargesClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expunge_charges_classified_total",
			Help: "Total charges classified by charge type",
		}, []string{"type"}),

		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expunge_evaluations_total",
			Help: "Total eligibility verdicts by charge type and status",
		}, []string{"type", "status"}),

		ChargeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expunge_charge_errors_total",
			Help: "Total charges that could not be evaluated, by error kind",
		}, []string{"kind"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expunge_classification_cache_lookups_total",
			Help: "Classification cache lookups by result",
		}, []string{"result"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "expunge_evaluate_duration_seconds",
			Help:    "Duration of classifying and evaluating a single charge",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// Registry exposes the underlying registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncrementClassified records a classification
func (m *Metrics) IncrementClassified(typeName string) {
	if m != nil {
		m.ChargesClassified.WithLabelValues(typeName).Inc()
	}
}

// IncrementEvaluation records a verdict
func (m *Metrics) IncrementEvaluation(typeName, status string) {
	if m != nil {
		m.Evaluations.WithLabelValues(typeName, status).Inc()
	}
}

// IncrementChargeError records a charge that could not be evaluated
func (m *Metrics) IncrementChargeError(kind string) {
	if m != nil {
		m.ChargeErrors.WithLabelValues(kind).Inc()
	}
}

// ObserveCacheLookup records a classification cache hit or miss
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveEvaluateLatency records the duration of one charge evaluation
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// WriteTextfile writes all metrics in the node_exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
