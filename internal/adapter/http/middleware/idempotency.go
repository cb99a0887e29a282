package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/iho/amortize/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a response served from the store.
	IdempotencyReplayHeader = "X-Idempotency-Replay"
)

// IdempotencyMiddleware replays stored responses of mutating requests that
// carry an Idempotency-Key header.
type IdempotencyMiddleware struct {
	store    usecase.IdempotencyStore
	ttl      time.Duration
	onReplay func()
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware. A zero ttl
// falls back to usecase.IdempotencyKeyTTL.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = usecase.IdempotencyKeyTTL
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl}
}

// OnReplay registers a callback invoked for every replayed response.
func (m *IdempotencyMiddleware) OnReplay(fn func()) *IdempotencyMiddleware {
	m.onReplay = fn
	return m
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		fingerprint := requestFingerprint(r, body)

		exists, cachedResponse, err := m.store.CheckAndSet(r.Context(), key, nil, m.ttl)
		if err != nil {
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists && cachedResponse != nil && string(cachedResponse) != "processing" {
			storedFingerprint, response, ok := splitStoredResponse(cachedResponse)
			if !ok || storedFingerprint != fingerprint {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"error":"idempotency key reused with a different request"}`))
				return
			}

			if m.onReplay != nil {
				m.onReplay()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(IdempotencyReplayHeader, "true")
			w.Write(response)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			m.store.Update(r.Context(), key, storedResponse(fingerprint, recorder.body.Bytes()), m.ttl)
		}
	})
}

// requestFingerprint identifies the request a key was first used with.
func requestFingerprint(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method + " " + r.URL.Path + "\n"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// storedResponse prefixes a response with the fingerprint of its request.
func storedResponse(fingerprint string, response []byte) []byte {
	out := make([]byte, 0, len(fingerprint)+1+len(response))
	out = append(out, fingerprint...)
	out = append(out, '\n')
	return append(out, response...)
}

func splitStoredResponse(stored []byte) (string, []byte, bool) {
	fingerprint, response, ok := bytes.Cut(stored, []byte{'\n'})
	if !ok || len(fingerprint) != hex.EncodedLen(sha256.Size) {
		return "", nil, false
	}
	return string(fingerprint), response, true
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
