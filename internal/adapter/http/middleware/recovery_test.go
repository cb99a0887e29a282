package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecovery_ReturnsInternalServerError(t *testing.T) {
	rr := httptest.NewRecorder()

	Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("schedule exploded")
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/mortgages/summary", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	if got := rr.Body.String(); got != `{"error":"internal server error"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestRecovery_PassesThrough(t *testing.T) {
	rr := httptest.NewRecorder()

	Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}
