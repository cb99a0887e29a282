package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewClient creates a new Redis client, retrying the initial ping with
// exponential backoff for up to maxElapsed.
func NewClient(ctx context.Context, redisURL string, maxElapsed time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = maxElapsed

	attempt := 0
	ping := func() error {
		attempt++
		err := client.Ping(ctx).Err()
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("redis not reachable, retrying")
		}
		return err
	}

	// Verify connection
	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
