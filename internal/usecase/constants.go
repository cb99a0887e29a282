package usecase

import "time"

const (
	// KindSchedule labels calculations that produced a full amortization schedule.
	KindSchedule = "schedule"
	// KindSummary labels calculations that produced only the payment summary.
	KindSummary = "summary"

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
