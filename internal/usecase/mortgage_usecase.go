package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/amortize/internal/domain"
)

// MortgageUseCase drives input validation, payment computation and
// schedule generation for a single loan.
type MortgageUseCase struct {
	clock   Clock
	idGen   IDGenerator
	metrics MetricsRecorder
}

// NewMortgageUseCase creates a new MortgageUseCase. A nil metrics recorder disables metrics.
func NewMortgageUseCase(clock Clock, idGen IDGenerator, metrics MetricsRecorder) *MortgageUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &MortgageUseCase{
		clock:   clock,
		idGen:   idGen,
		metrics: metrics,
	}
}

// CalculateInput represents input for a mortgage calculation.
type CalculateInput struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         int
	// StartDate overrides the clock as the schedule generation date.
	StartDate *time.Time
}

func (in CalculateInput) loan() domain.LoanInput {
	return domain.LoanInput{
		Principal:         in.Principal,
		AnnualRatePercent: in.AnnualRatePercent,
		TermYears:         in.TermYears,
	}
}

// Calculate computes the payment summary, breakdown and full amortization schedule.
func (uc *MortgageUseCase) Calculate(ctx context.Context, input CalculateInput) (*domain.Calculation, error) {
	start := time.Now()

	calc, err := uc.summarize(input)
	if err != nil {
		return nil, err
	}

	generatedAt := uc.generatedAt(input)

	loan := calc.Input
	calc.GeneratedAt = generatedAt
	calc.Schedule = domain.GenerateSchedule(
		loan.Principal,
		loan.AnnualRatePercent,
		loan.TermYears,
		calc.Summary.MonthlyPayment,
		generatedAt,
	)

	uc.metrics.CalculationCompleted(KindSchedule, loan.Months(), time.Since(start))

	return calc, nil
}

// Summarize computes the payment summary and breakdown without a schedule.
func (uc *MortgageUseCase) Summarize(ctx context.Context, input CalculateInput) (*domain.Calculation, error) {
	start := time.Now()

	calc, err := uc.summarize(input)
	if err != nil {
		return nil, err
	}
	calc.GeneratedAt = uc.generatedAt(input)

	uc.metrics.CalculationCompleted(KindSummary, calc.Input.Months(), time.Since(start))

	return calc, nil
}

// generatedAt returns the caller's start date, falling back to the clock.
func (uc *MortgageUseCase) generatedAt(input CalculateInput) time.Time {
	if input.StartDate != nil {
		return *input.StartDate
	}
	return uc.clock.Now()
}

func (uc *MortgageUseCase) summarize(input CalculateInput) (*domain.Calculation, error) {
	loan := input.loan()

	if err := domain.ValidateLoanInput(loan); err != nil {
		uc.recordValidationFailure(err)
		return nil, err
	}

	summary := domain.ComputePayment(loan.Principal, loan.AnnualRatePercent, loan.TermYears)
	if err := domain.ValidatePaymentSummary(summary); err != nil {
		uc.recordValidationFailure(err)
		return nil, err
	}

	return &domain.Calculation{
		ID:        uc.idGen.Generate(),
		Input:     loan,
		Summary:   summary,
		Breakdown: domain.NewBreakdown(summary),
	}, nil
}

func (uc *MortgageUseCase) recordValidationFailure(err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			uc.metrics.ValidationFailed(f.Field)
		}
	}
}
