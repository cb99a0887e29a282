package domain

import "math"

// Slice is one segment of the principal/interest split.
type Slice struct {
	Label   string
	Amount  float64
	Percent int
}

// Breakdown splits the total cost of a loan into principal and interest.
type Breakdown struct {
	Principal Slice
	Interest  Slice
}

// NewBreakdown derives the principal/interest split from a summary.
// Percentages are whole numbers of the total payment.
func NewBreakdown(s PaymentSummary) Breakdown {
	return Breakdown{
		Principal: Slice{Label: "Principal", Amount: s.Principal, Percent: share(s.Principal, s.TotalPayment)},
		Interest:  Slice{Label: "Interest", Amount: s.TotalInterest, Percent: share(s.TotalInterest, s.TotalPayment)},
	}
}

func share(value, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(value / total * 100))
}
