package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records operation metadata for entity stores. All methods are
// nil-safe so stores can run unmetered in tests.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	failure  *prometheus.CounterVec
	loading  *prometheus.GaugeVec
}

// NewStoreMetrics registers the entity store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of entity store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store", "op"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operation_failure",
		Help: "Failed entity store operations.",
	}, []string{"store", "op"})
	loading := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_loading",
		Help: "Entity store operations currently in flight.",
	}, []string{"store"})
	reg.MustRegister(duration, failure, loading)
	return &StoreMetrics{
		duration: duration,
		failure:  failure,
		loading:  loading,
	}
}

// ObserveDuration records how long the named operation took.
func (m *StoreMetrics) ObserveDuration(store, op string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Observe(duration.Seconds())
}

// IncFailure increments the failure counter for the named operation.
func (m *StoreMetrics) IncFailure(store, op string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// LoadingStarted raises the in-flight gauge for the named store.
func (m *StoreMetrics) LoadingStarted(store string) {
	if m == nil || m.loading == nil {
		return
	}
	m.loading.WithLabelValues(normalizeLabel(store)).Inc()
}

// LoadingFinished lowers the in-flight gauge for the named store.
func (m *StoreMetrics) LoadingFinished(store string) {
	if m == nil || m.loading == nil {
		return
	}
	m.loading.WithLabelValues(normalizeLabel(store)).Dec()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
