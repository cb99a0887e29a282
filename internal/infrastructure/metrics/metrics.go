package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Calculation metrics
	Calculations        *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	ScheduleMonths      prometheus.Histogram

	// Validation metrics
	ValidationFailures *prometheus.CounterVec

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		Calculations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amortize_calculations_total",
				Help: "Total number of mortgage calculations by kind",
			},
			[]string{"kind"},
		),
		CalculationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "amortize_calculation_duration_seconds",
				Help:    "Duration of mortgage calculations",
				Buckets: []float64{.00001, .0001, .001, .005, .01, .05, .1},
			},
			[]string{"kind"},
		),
		ScheduleMonths: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "amortize_schedule_months",
			Help:    "Number of monthly payments per calculated loan",
			Buckets: []float64{12, 60, 120, 180, 240, 300, 360, 480, 600},
		}),
		ValidationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amortize_validation_failures_total",
				Help: "Total number of rejected input fields",
			},
			[]string{"field"},
		),
		IdempotencyReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "amortize_idempotency_replays_total",
			Help: "Total number of responses served from the idempotency store",
		}),
		RateLimitHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "amortize_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}

// CalculationCompleted implements usecase.MetricsRecorder.
func (m *Metrics) CalculationCompleted(kind string, months int, duration time.Duration) {
	m.Calculations.WithLabelValues(kind).Inc()
	m.CalculationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	m.ScheduleMonths.Observe(float64(months))
}

// ValidationFailed implements usecase.MetricsRecorder.
func (m *Metrics) ValidationFailed(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}
