package usecase

import (
	"context"
	"time"
)

// Clock supplies the generation date of a schedule.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder observes calculator activity.
type MetricsRecorder interface {
	// CalculationCompleted records a successful calculation of the given kind.
	CalculationCompleted(kind string, months int, duration time.Duration)
	// ValidationFailed records one rejected input field.
	ValidationFailed(field string)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) CalculationCompleted(string, int, time.Duration) {}
func (nopMetrics) ValidationFailed(string)                         {}
