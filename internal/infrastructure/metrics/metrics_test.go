package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.Calculations == nil || m.ValidationFailures == nil || m.RateLimitHits == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.CalculationCompleted("schedule", 360, 2*time.Millisecond)
	m.CalculationCompleted("summary", 120, time.Millisecond)
	m.ValidationFailed("principal")

	if got := testutil.ToFloat64(m.Calculations.WithLabelValues("schedule")); got != 1 {
		t.Fatalf("expected one schedule calculation, got %v", got)
	}

	if got := testutil.ToFloat64(m.ValidationFailures.WithLabelValues("principal")); got != 1 {
		t.Fatalf("expected one principal failure, got %v", got)
	}

	if got := testutil.CollectAndCount(m.ScheduleMonths); got != 1 {
		t.Fatalf("expected schedule months histogram to be collected, got %d", got)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}
