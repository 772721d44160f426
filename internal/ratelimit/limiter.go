package ratelimit

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles evaluation submissions per user. Transcription is
// the expensive step of the pipeline, so repeated uploads are capped.
type RateLimiter struct {
	rdb *redis.Client
}

// NewRateLimiter creates a new RateLimiter instance
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{rdb: GetRedisClient()}
}

// Config defines rate limit rules
type Config struct {
	MaxEvaluations   int           // per window
	EvaluationWindow time.Duration // time window for evaluations
}

// DefaultConfig returns the default rate limit configuration
func DefaultConfig() Config {
	return Config{
		MaxEvaluations:   5,
		EvaluationWindow: 10 * time.Minute,
	}
}

// CheckEvaluationRateLimit reports whether the user may submit another
// recording for evaluation
func (rl *RateLimiter) CheckEvaluationRateLimit(userEmail string, config Config) (bool, error) {
	if rl == nil || rl.rdb == nil {
		return false, fmt.Errorf("Redis client not available")
	}

	key := fmt.Sprintf("rate:evaluation:%s", userEmail)

	count, err := rl.rdb.Get(ctx, key).Int()
	if err == redis.Nil {
		// First evaluation in the window, allow it
		return true, nil
	} else if err != nil {
		return false, err
	}

	if count >= config.MaxEvaluations {
		return false, nil
	}

	return true, nil
}

// RecordEvaluation increments the user's counter for the current window
func (rl *RateLimiter) RecordEvaluation(userEmail string, config Config) error {
	if rl == nil || rl.rdb == nil {
		return fmt.Errorf("Redis client not available")
	}

	key := fmt.Sprintf("rate:evaluation:%s", userEmail)

	pipe := rl.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, config.EvaluationWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	return nil
}
