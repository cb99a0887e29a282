package domain

import "time"

// BalanceEpsilon is the remaining balance below which a loan counts as repaid.
const BalanceEpsilon = 0.01

// GenerateSchedule builds the month-by-month amortization of a loan.
//
// start is the generation date; the first payment falls one month after it
// and every following payment one month after the previous one.
func GenerateSchedule(principal, annualRatePercent float64, termYears int, monthlyPayment float64, start time.Time) Schedule {
	rate := monthlyRate(annualRatePercent)
	n := termYears * 12

	schedule := make(Schedule, 0, n)
	balance := principal
	date := start

	for period := 1; period <= n; period++ {
		interest := balance * rate
		principalPortion := monthlyPayment - interest

		balance -= principalPortion
		if balance < BalanceEpsilon {
			balance = 0
		}

		date = date.AddDate(0, 1, 0)

		schedule = append(schedule, AmortizationEntry{
			Period:    period,
			Date:      date,
			Payment:   monthlyPayment,
			Principal: principalPortion,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule
}
