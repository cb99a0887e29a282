package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/amortize/internal/usecase"
)

// ErrInvalidStartDate is returned when start_date is neither YYYY-MM-DD nor YYYY-MM.
var ErrInvalidStartDate = errors.New("start_date must be formatted as YYYY-MM-DD or YYYY-MM")

var startDateLayouts = []string{"2006-01-02", "2006-01"}

// CalculateRequest represents a request to calculate a mortgage.
type CalculateRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermYears         int             `json:"term_years"`
	StartDate         string          `json:"start_date,omitempty"`
	IncludeSchedule   *bool           `json:"include_schedule,omitempty"`
}

// WantsSchedule reports whether the schedule should be included in the response.
func (r *CalculateRequest) WantsSchedule() bool {
	return r.IncludeSchedule == nil || *r.IncludeSchedule
}

// ToUseCaseInput converts to use case input.
func (r *CalculateRequest) ToUseCaseInput() (usecase.CalculateInput, error) {
	input := usecase.CalculateInput{
		Principal:         r.Principal.InexactFloat64(),
		AnnualRatePercent: r.AnnualRatePercent.InexactFloat64(),
		TermYears:         r.TermYears,
	}

	if r.StartDate != "" {
		start, err := ParseStartDate(r.StartDate)
		if err != nil {
			return usecase.CalculateInput{}, err
		}
		input.StartDate = &start
	}

	return input, nil
}

// ParseStartDate parses a schedule start date in UTC.
func ParseStartDate(s string) (time.Time, error) {
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartDate, s)
}
