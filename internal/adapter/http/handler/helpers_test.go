package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/iho/amortize/internal/adapter/http/dto"
	"github.com/iho/amortize/internal/domain"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/summary?term=30", nil)
	if got := parseIntQuery(req, "term", 10); got != 30 {
		t.Fatalf("expected term=30, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/summary?term=invalid", nil)
	if got := parseIntQuery(req, "term", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "term", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestParseFloatQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/summary?rate=6.5&principal=abc", nil)

	if got := parseFloatQuery(req, "rate"); got != 6.5 {
		t.Fatalf("expected 6.5, got %v", got)
	}
	if got := parseFloatQuery(req, "principal"); !math.IsNaN(got) {
		t.Fatalf("expected NaN for malformed value, got %v", got)
	}
	if got := parseFloatQuery(req, "missing"); !math.IsNaN(got) {
		t.Fatalf("expected NaN for missing value, got %v", got)
	}
}

func TestLoanQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/summary?principal=250000&rate=4.5&term=20&start=2027-01", nil)

	input, err := loanQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Principal != 250000 || input.AnnualRatePercent != 4.5 || input.TermYears != 20 {
		t.Fatalf("unexpected input: %+v", input)
	}
	if input.StartDate == nil || input.StartDate.Year() != 2027 {
		t.Fatalf("expected start date in 2027, got %v", input.StartDate)
	}

	req = httptest.NewRequest(http.MethodGet, "/summary?principal=1&rate=1&term=1&start=soon", nil)
	if _, err := loanQuery(req); !errors.Is(err, dto.ErrInvalidStartDate) {
		t.Fatalf("expected ErrInvalidStartDate, got %v", err)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid loan input", domain.ErrInvalidLoanInput, http.StatusUnprocessableEntity},
		{"validation error", domain.ValidateLoanInput(domain.LoanInput{}), http.StatusUnprocessableEntity},
		{"invalid start date", dto.ErrInvalidStartDate, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" || resp.Message != "detail" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}
}
