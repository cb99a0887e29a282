package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDateLayout renders schedule dates as "Jan 2026".
const PeriodDateLayout = "Jan 2006"

// RoundCents rounds an amount to two decimal places.
func RoundCents(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// FormatMoney renders an amount as "$1,234.56".
func FormatMoney(amount float64) string {
	return "$" + FormatAmount(amount)
}

// FormatAmount renders an amount with two decimals and thousands separators.
func FormatAmount(amount float64) string {
	s := RoundCents(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	return sign + b.String() + "." + frac
}

// FormatPeriodDate renders a schedule date.
func FormatPeriodDate(t time.Time) string {
	return t.Format(PeriodDateLayout)
}
