package ratelimit

import "testing"

func TestClientIsNilBeforeInit(t *testing.T) {
	if GetRedisClient() != nil {
		t.Error("Expected nil client before InitRedis")
	}
}

func TestLimiterRejectsCallsWithoutClient(t *testing.T) {
	limiter := NewRateLimiter()

	if _, err := limiter.CheckEvaluationRateLimit("alice@example.com", DefaultConfig()); err == nil {
		t.Error("Expected an error checking the limit without a Redis client")
	}
	if err := limiter.RecordEvaluation("alice@example.com", DefaultConfig()); err == nil {
		t.Error("Expected an error recording an evaluation without a Redis client")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxEvaluations != 5 {
		t.Errorf("Expected 5 evaluations per window, got %d", cfg.MaxEvaluations)
	}
	if cfg.EvaluationWindow.Minutes() != 10 {
		t.Errorf("Expected a 10 minute window, got %v", cfg.EvaluationWindow)
	}
}
