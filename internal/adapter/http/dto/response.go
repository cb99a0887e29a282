package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/amortize/internal/domain"
)

// LoanResponse echoes the loan that was calculated.
type LoanResponse struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
	Months            int             `json:"months"`
}

// SummaryResponse represents a payment summary in API responses.
type SummaryResponse struct {
	MonthlyPayment decimal.Decimal  `json:"monthly_payment"`
	TotalPayment   decimal.Decimal  `json:"total_payment"`
	TotalInterest  decimal.Decimal  `json:"total_interest"`
	Principal      decimal.Decimal  `json:"principal"`
	Formatted      FormattedSummary `json:"formatted"`
}

// FormattedSummary holds display strings with thousands separators.
type FormattedSummary struct {
	MonthlyPayment string `json:"monthly_payment"`
	TotalPayment   string `json:"total_payment"`
	TotalInterest  string `json:"total_interest"`
	Principal      string `json:"principal"`
}

// SliceResponse is one segment of the principal/interest split.
type SliceResponse struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Percent int             `json:"percent"`
}

// BreakdownResponse represents the principal/interest split.
type BreakdownResponse struct {
	Principal SliceResponse `json:"principal"`
	Interest  SliceResponse `json:"interest"`
}

// EntryResponse represents an amortization period in API responses.
type EntryResponse struct {
	Period    int             `json:"period"`
	Date      string          `json:"date"`
	Label     string          `json:"label"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// CalculationResponse represents a calculation in API responses.
type CalculationResponse struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Loan        LoanResponse      `json:"loan"`
	Summary     SummaryResponse   `json:"summary"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	Schedule    []EntryResponse   `json:"schedule,omitempty"`
}

// CalculationFromDomain converts a domain calculation to a response.
// Amounts are rounded to cents; the schedule is omitted when withSchedule is false.
func CalculationFromDomain(c *domain.Calculation, withSchedule bool) *CalculationResponse {
	resp := &CalculationResponse{
		ID:          c.ID,
		GeneratedAt: c.GeneratedAt,
		Loan: LoanResponse{
			Principal:         domain.RoundCents(c.Input.Principal),
			AnnualRatePercent: decimal.NewFromFloat(c.Input.AnnualRatePercent),
			TermYears:         c.Input.TermYears,
			Months:            c.Input.Months(),
		},
		Summary:   SummaryFromDomain(c.Summary),
		Breakdown: BreakdownFromDomain(c.Breakdown),
	}

	if withSchedule {
		resp.Schedule = EntriesFromDomain(c.Schedule)
	}

	return resp
}

// SummaryFromDomain converts a payment summary to a response.
func SummaryFromDomain(s domain.PaymentSummary) SummaryResponse {
	return SummaryResponse{
		MonthlyPayment: domain.RoundCents(s.MonthlyPayment),
		TotalPayment:   domain.RoundCents(s.TotalPayment),
		TotalInterest:  domain.RoundCents(s.TotalInterest),
		Principal:      domain.RoundCents(s.Principal),
		Formatted: FormattedSummary{
			MonthlyPayment: domain.FormatMoney(s.MonthlyPayment),
			TotalPayment:   domain.FormatMoney(s.TotalPayment),
			TotalInterest:  domain.FormatMoney(s.TotalInterest),
			Principal:      domain.FormatMoney(s.Principal),
		},
	}
}

// BreakdownFromDomain converts a breakdown to a response.
func BreakdownFromDomain(b domain.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Principal: sliceFromDomain(b.Principal),
		Interest:  sliceFromDomain(b.Interest),
	}
}

func sliceFromDomain(s domain.Slice) SliceResponse {
	return SliceResponse{
		Label:   s.Label,
		Amount:  domain.RoundCents(s.Amount),
		Percent: s.Percent,
	}
}

// EntryFromDomain converts a schedule entry to a response.
func EntryFromDomain(e domain.AmortizationEntry) EntryResponse {
	return EntryResponse{
		Period:    e.Period,
		Date:      e.Date.Format("2006-01"),
		Label:     domain.FormatPeriodDate(e.Date),
		Payment:   domain.RoundCents(e.Payment),
		Principal: domain.RoundCents(e.Principal),
		Interest:  domain.RoundCents(e.Interest),
		Balance:   domain.RoundCents(e.Balance),
	}
}

// EntriesFromDomain converts a schedule to responses.
func EntriesFromDomain(schedule domain.Schedule) []EntryResponse {
	result := make([]EntryResponse, len(schedule))
	for i, e := range schedule {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Message string               `json:"message,omitempty"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse describes one invalid input field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrorsFromDomain extracts per-field messages from a validation error.
func FieldErrorsFromDomain(err error) []FieldErrorResponse {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	fields := make([]FieldErrorResponse, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = FieldErrorResponse{Field: f.Field, Message: f.Message}
	}
	return fields
}
