package domain

import "math"

// Field names used in validation errors.
const (
	FieldPrincipal = "principal"
	FieldRate      = "annual_rate_percent"
	FieldTerm      = "term_years"
)

// Validation limits
const (
	MaxAnnualRatePercent = 20
	MaxTermYears         = 50
)

// Validation messages shown next to the offending field.
const (
	MsgInvalidPrincipal  = "Please enter a valid loan amount greater than zero."
	MsgInvalidRate       = "Please enter a valid interest rate between 0.1 and 20%."
	MsgInvalidTerm       = "Please select a valid loan term."
	MsgPrincipalTooLarge = "Please enter a smaller loan amount."
)

// ValidateLoanInput checks every field and reports all of the invalid ones.
func ValidateLoanInput(in LoanInput) error {
	var fields []FieldError

	if !isFinite(in.Principal) || in.Principal <= 0 {
		fields = append(fields, FieldError{Field: FieldPrincipal, Message: MsgInvalidPrincipal})
	}

	if !isFinite(in.AnnualRatePercent) || in.AnnualRatePercent <= 0 || in.AnnualRatePercent > MaxAnnualRatePercent {
		fields = append(fields, FieldError{Field: FieldRate, Message: MsgInvalidRate})
	}

	if in.TermYears <= 0 || in.TermYears > MaxTermYears {
		fields = append(fields, FieldError{Field: FieldTerm, Message: MsgInvalidTerm})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// ValidatePaymentSummary rejects a summary whose amounts overflowed float64.
// Such a summary comes from an accepted but oversized principal.
func ValidatePaymentSummary(s PaymentSummary) error {
	for _, v := range []float64{s.MonthlyPayment, s.TotalPayment, s.TotalInterest} {
		if !isFinite(v) {
			return &ValidationError{Fields: []FieldError{{Field: FieldPrincipal, Message: MsgPrincipalTooLarge}}}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
