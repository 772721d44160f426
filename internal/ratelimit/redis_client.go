package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Shared connection backing the evaluation throttle. Redis is optional:
// until InitRedis succeeds the client stays nil and callers skip throttling.
var (
	rdb *redis.Client
	ctx = context.Background()
)

// InitRedis connects the client used for evaluation rate limiting. The
// client is only published after a successful ping, so a failed connect
// leaves throttling disabled rather than half-configured.
func InitRedis(addr string, password string, db int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	rdb = client
	return nil
}

// GetRedisClient returns the throttle connection, nil when Redis is not
// configured
func GetRedisClient() *redis.Client {
	return rdb
}
