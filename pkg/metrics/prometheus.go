package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Default calorie histogram buckets, in kcal per session.
var defaultCaloriesBuckets = []float64{50, 100, 200, 400, 800, 1600}

// Manager manages all Prometheus metrics for session processing.
type Manager struct {
	namespace       string
	subsystem       string
	caloriesBuckets []float64
	enabled         bool
	registry        prometheus.Registerer

	// Business metrics
	sessionsProcessed *prometheus.CounterVec // by workout-type code
	dispatchErrors    prometheus.Counter
	caloriesBurned    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "stride",
		subsystem:       "tracker",
		caloriesBuckets: defaultCaloriesBuckets,
		enabled:         true,
		registry:        prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	m.sessionsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_processed_total",
		Help:      "Total number of sensor packages decoded and reported.",
	}, []string{"workout_type"})

	m.dispatchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dispatch_errors_total",
		Help:      "Total number of sensor packages rejected by dispatch.",
	})

	m.caloriesBurned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calories_burned_kcal",
		Help:      "Distribution of calories burned per reported session.",
		Buckets:   m.caloriesBuckets,
	})

	m.registry.MustRegister(m.sessionsProcessed, m.dispatchErrors, m.caloriesBurned)
}

// RecordSessionProcessed counts one successfully reported session.
func RecordSessionProcessed(workoutType string) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.sessionsProcessed.WithLabelValues(workoutType).Inc()
}

// RecordDispatchError counts one rejected sensor package.
func RecordDispatchError() {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.dispatchErrors.Inc()
}

// ObserveCalories records the calorie figure of one reported session.
func ObserveCalories(kcal float64) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.caloriesBurned.Observe(kcal)
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	if globalManager != nil {
		globalManager.enabled = enabled
	}
}

// GetRegistry returns the custom registry for embedders that expose metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
