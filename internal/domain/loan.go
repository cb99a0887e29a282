package domain

import "time"

// LoanInput describes a fixed-rate mortgage.
type LoanInput struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         int
}

// Months returns the number of monthly payments.
func (in LoanInput) Months() int {
	return in.TermYears * 12
}

// PaymentSummary holds the totals derived from a LoanInput.
type PaymentSummary struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Principal      float64
}

// AmortizationEntry is a single period of an amortization schedule.
type AmortizationEntry struct {
	Date      time.Time
	Period    int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Schedule is the chronological list of payments retiring a loan.
type Schedule []AmortizationEntry

// TotalPrincipal sums the principal portion of every entry.
func (s Schedule) TotalPrincipal() float64 {
	var total float64
	for _, e := range s {
		total += e.Principal
	}
	return total
}

// TotalInterest sums the interest portion of every entry.
func (s Schedule) TotalInterest() float64 {
	var total float64
	for _, e := range s {
		total += e.Interest
	}
	return total
}

// Calculation bundles everything produced for one LoanInput.
type Calculation struct {
	GeneratedAt time.Time
	ID          string
	Input       LoanInput
	Summary     PaymentSummary
	Breakdown   Breakdown
	Schedule    Schedule
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}
