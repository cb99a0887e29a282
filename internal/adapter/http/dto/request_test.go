package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCalculateRequest_ToUseCaseInput(t *testing.T) {
	var req CalculateRequest
	body := `{"principal":"300000","annual_rate_percent":6.5,"term_years":30,"start_date":"2026-10-16"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Principal != 300000 || input.AnnualRatePercent != 6.5 || input.TermYears != 30 {
		t.Fatalf("unexpected input: %+v", input)
	}

	want := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	if input.StartDate == nil || !input.StartDate.Equal(want) {
		t.Fatalf("expected start date %s, got %v", want, input.StartDate)
	}

	if !req.WantsSchedule() {
		t.Fatalf("expected schedule by default")
	}
}

func TestCalculateRequest_WithoutStartDate(t *testing.T) {
	off := false
	req := CalculateRequest{TermYears: 15, IncludeSchedule: &off}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.StartDate != nil {
		t.Fatalf("expected no start date, got %v", input.StartDate)
	}
	if req.WantsSchedule() {
		t.Fatalf("expected schedule to be disabled")
	}
}

func TestParseStartDate(t *testing.T) {
	if got, err := ParseStartDate("2027-03"); err != nil || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("expected 1 March 2027, got %v err=%v", got, err)
	}

	if _, err := ParseStartDate("16/10/2026"); !errors.Is(err, ErrInvalidStartDate) {
		t.Fatalf("expected ErrInvalidStartDate, got %v", err)
	}
}
