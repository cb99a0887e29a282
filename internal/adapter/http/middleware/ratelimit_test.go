package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_RejectsBurstOverflow(t *testing.T) {
	hits := 0
	rl := NewRateLimiter(0.001, 2).OnLimit(func() { hits++ })

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mortgages/summary", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes: %v", codes)
	}

	if hits != 1 {
		t.Fatalf("expected limit hook to fire once, got %d", hits)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mortgages/summary", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected other client to be allowed, got %d", rr.Code)
	}
}

func TestGetIP(t *testing.T) {
	testCases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		expected   string
	}{
		{"forwarded chain", "203.0.113.9, 10.0.0.1", "", "10.0.0.1:80", "203.0.113.9"},
		{"real ip", "", "198.51.100.4", "10.0.0.1:80", "198.51.100.4"},
		{"remote addr", "", "", "192.0.2.1:1234", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}

			if got := getIP(req); got != tc.expected {
				t.Fatalf("getIP() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRateLimiter_CleanupLimiters(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10)
	rl.now = func() time.Time { return now }

	rl.getLimiter("old")
	now = now.Add(2 * time.Hour)
	rl.getLimiter("fresh")

	if removed := rl.CleanupLimiters(time.Hour); removed != 1 {
		t.Fatalf("expected one limiter removed, got %d", removed)
	}

	if _, ok := rl.limiters["fresh"]; !ok {
		t.Fatalf("expected recent client to be kept")
	}
}
