package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/amortize/internal/adapter/http/handler"
	"github.com/iho/amortize/internal/adapter/http/middleware"
	"github.com/iho/amortize/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MortgageHandler  *handler.MortgageHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	OnReplay         func()
	RateLimiter      *middleware.RateLimiter
	Logger           *zerolog.Logger
	MetricsHandler   http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(*cfg.Logger).Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).
				OnReplay(cfg.OnReplay)
			r.Use(idempotency.Wrap)
		}

		r.Route("/mortgages", func(r chi.Router) {
			r.Post("/calculate", cfg.MortgageHandler.Calculate)
			r.Get("/summary", cfg.MortgageHandler.Summary)
			r.Get("/schedule.pdf", cfg.MortgageHandler.SchedulePDF)
		})
	})

	return r
}
