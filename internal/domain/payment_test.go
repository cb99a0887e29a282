package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		principal    float64
		rate         float64
		termYears    int
		wantMonthly  float64
		wantTotal    float64
		wantInterest float64
	}{
		{
			name:         "300k at 6% over 30 years",
			principal:    300000,
			rate:         6,
			termYears:    30,
			wantMonthly:  1798.65,
			wantTotal:    647514.57,
			wantInterest: 347514.57,
		},
		{
			name:         "200k at 4% over 25 years",
			principal:    200000,
			rate:         4,
			termYears:    25,
			wantMonthly:  1055.67,
			wantTotal:    316702.10,
			wantInterest: 116702.10,
		},
		{
			name:         "150k at 3.5% over 20 years",
			principal:    150000,
			rate:         3.5,
			termYears:    20,
			wantMonthly:  869.94,
			wantTotal:    208785.50,
			wantInterest: 58785.50,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputePayment(tt.principal, tt.rate, tt.termYears)

			assert.InDelta(t, tt.wantMonthly, got.MonthlyPayment, 0.005)
			assert.InDelta(t, tt.wantTotal, got.TotalPayment, 0.01)
			assert.InDelta(t, tt.wantInterest, got.TotalInterest, 0.01)
			assert.Equal(t, tt.principal, got.Principal)
			assert.InDelta(t, got.TotalPayment-got.Principal, got.TotalInterest, 1e-6)
		})
	}
}

func TestComputePayment_ReferenceTotalsToTheCent(t *testing.T) {
	t.Parallel()

	got := ComputePayment(300000, 6, 30)

	assert.Equal(t, "1798.65", RoundCents(got.MonthlyPayment).StringFixed(2))
	assert.Equal(t, "647514.57", RoundCents(got.TotalPayment).StringFixed(2))
	assert.Equal(t, "347514.57", RoundCents(got.TotalInterest).StringFixed(2))
}

func TestComputePayment_BoundaryRates(t *testing.T) {
	t.Parallel()

	const principal, termYears = 100000.0, 1
	straightLine := principal / float64(termYears*12)

	for _, rate := range []float64{1e-300, 1e-14, 1e-12, 1e-6, 0.0001, 0.1, MaxAnnualRatePercent} {
		got := ComputePayment(principal, rate, termYears)

		for _, v := range []float64{got.MonthlyPayment, got.TotalPayment, got.TotalInterest} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("rate %v: expected finite result, got %+v", rate, got)
			}
		}

		if got.MonthlyPayment < straightLine*(1-1e-12) {
			t.Fatalf("rate %v: payment %v must not fall below straight-line repayment", rate, got.MonthlyPayment)
		}
		if got.TotalInterest < -1e-6 {
			t.Fatalf("rate %v: negative total interest %v", rate, got.TotalInterest)
		}
	}
}
