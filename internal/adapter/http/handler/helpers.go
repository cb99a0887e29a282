package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/iho/amortize/internal/adapter/http/dto"
	"github.com/iho/amortize/internal/domain"
	"github.com/iho/amortize/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes an error response with the status and field
// details derived from err.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mapDomainError(err))
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: err.Error(),
		Fields:  dto.FieldErrorsFromDomain(err),
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidLoanInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dto.ErrInvalidStartDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseFloatQuery parses a float query parameter. Missing or malformed
// values become NaN so that validation reports the field.
func parseFloatQuery(r *http.Request, key string) float64 {
	f, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// loanQuery reads a loan from the principal, rate, term and start query parameters.
func loanQuery(r *http.Request) (usecase.CalculateInput, error) {
	input := usecase.CalculateInput{
		Principal:         parseFloatQuery(r, "principal"),
		AnnualRatePercent: parseFloatQuery(r, "rate"),
		TermYears:         parseIntQuery(r, "term", 0),
	}

	if s := r.URL.Query().Get("start"); s != "" {
		start, err := dto.ParseStartDate(s)
		if err != nil {
			return usecase.CalculateInput{}, err
		}
		input.StartDate = &start
	}

	return input, nil
}
