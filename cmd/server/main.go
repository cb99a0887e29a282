package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/amortize/internal/adapter/http"
	"github.com/iho/amortize/internal/adapter/http/handler"
	"github.com/iho/amortize/internal/adapter/http/middleware"
	redisRepo "github.com/iho/amortize/internal/adapter/repository/redis"
	"github.com/iho/amortize/internal/infrastructure/config"
	"github.com/iho/amortize/internal/infrastructure/idgen"
	"github.com/iho/amortize/internal/infrastructure/logger"
	"github.com/iho/amortize/internal/infrastructure/metrics"
	"github.com/iho/amortize/internal/infrastructure/redis"
	"github.com/iho/amortize/internal/usecase"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	limiterMaxIdle         = time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL, cfg.RedisConnectRetry)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	} else {
		log.Info().Msg("redis not configured, idempotency disabled")
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)

	routerCfg := buildRouterConfig(cfg, appLogger, redisClient, m)
	if routerCfg.RateLimiter != nil {
		go routerCfg.RateLimiter.RunCleanup(limiterCleanupInterval, limiterMaxIdle, stopCleanup)
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped")
}

// buildRouterConfig wires use cases and handlers. redisClient and m may be nil.
func buildRouterConfig(cfg *config.Config, appLogger zerolog.Logger, redisClient *goredis.Client, m *metrics.Metrics) httpAdapter.RouterConfig {
	var recorder usecase.MetricsRecorder
	if m != nil {
		recorder = m
	}

	mortgageUC := usecase.NewMortgageUseCase(usecase.SystemClock{}, idgen.NewULIDGenerator(), recorder)

	routerCfg := httpAdapter.RouterConfig{
		MortgageHandler: handler.NewMortgageHandler(mortgageUC),
		HealthHandler:   handler.NewHealthHandler(nil),
		IdempotencyTTL:  cfg.IdempotencyTTL,
		Logger:          &appLogger,
	}

	if redisClient != nil {
		store := redisRepo.NewIdempotencyStore(redisClient)
		routerCfg.IdempotencyStore = store
		routerCfg.HealthHandler = handler.NewHealthHandler(store)
	}

	if cfg.RateLimitRPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	if m != nil {
		routerCfg.MetricsHandler = promhttp.Handler()
		routerCfg.OnReplay = m.IdempotencyReplays.Inc
		if routerCfg.RateLimiter != nil {
			routerCfg.RateLimiter.OnLimit(m.RateLimitHits.Inc)
		}
	}

	return routerCfg
}
