package domain

import "math"

// ComputePayment applies the annuity formula to a loan.
//
// The caller must pass input that satisfies ValidateLoanInput; a zero rate
// divides by zero and is not guarded here.
func ComputePayment(principal, annualRatePercent float64, termYears int) PaymentSummary {
	r := monthlyRate(annualRatePercent)
	n := float64(termYears * 12)

	// (1+r)^n evaluated through Log1p/Expm1 keeps precision for rates near zero.
	l := n * math.Log1p(r)
	payment := principal * r * math.Exp(l) / math.Expm1(l)
	total := payment * n

	return PaymentSummary{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Principal:      principal,
	}
}
