package domain

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{999.999, "$1,000.00"},
		{1798.6515754, "$1,798.65"},
		{647514.5671, "$647,514.57"},
		{1234567.891, "$1,234,567.89"},
		{-4321.1, "$-4,321.10"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPeriodDate(t *testing.T) {
	d := time.Date(2027, time.February, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatPeriodDate(d); got != "Feb 2027" {
		t.Fatalf("expected Feb 2027, got %q", got)
	}
}

func TestNewBreakdown(t *testing.T) {
	b := NewBreakdown(ComputePayment(300000, 6, 30))

	if b.Principal.Label != "Principal" || b.Interest.Label != "Interest" {
		t.Fatalf("unexpected labels: %+v", b)
	}
	if b.Principal.Percent != 46 || b.Interest.Percent != 54 {
		t.Fatalf("expected 46/54 split, got %d/%d", b.Principal.Percent, b.Interest.Percent)
	}
	if b.Principal.Amount != 300000 {
		t.Fatalf("expected principal amount echoed, got %v", b.Principal.Amount)
	}
}

func TestNewBreakdown_ZeroTotal(t *testing.T) {
	b := NewBreakdown(PaymentSummary{})
	if b.Principal.Percent != 0 || b.Interest.Percent != 0 {
		t.Fatalf("expected zero shares, got %+v", b)
	}
}
