package gateway

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"med-estudia/internal/config"
	"med-estudia/internal/domain"
	"med-estudia/internal/logger"

	"go.uber.org/zap"
)

// RetryPolicy decides whether a failed attempt (0-based) is retried and how
// long to wait first.
type RetryPolicy interface {
	Next(attempt int, err error) (time.Duration, bool)
}

// NoRetry never retries. It is the default.
type NoRetry struct{}

func (NoRetry) Next(int, error) (time.Duration, bool) { return 0, false }

// ExponentialBackoff retries rate limits, 5xx responses and transport
// failures with exponential backoff and ±20% jitter.
type ExponentialBackoff struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func (b ExponentialBackoff) Next(attempt int, err error) (time.Duration, bool) {
	if attempt+1 >= b.MaxAttempts || !Retryable(err) {
		return 0, false
	}

	wait := float64(b.InitialWait) * math.Pow(b.Multiplier, float64(attempt))
	if b.MaxWait > 0 && wait > float64(b.MaxWait) {
		wait = float64(b.MaxWait)
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait), true
}

// Retryable reports whether err is a transient gateway failure.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch domain.CodeOf(err) {
	case domain.CodeGatewayRateLimited:
		return true
	case domain.CodeGatewayUpstream:
		status := Status(err)
		return status == 0 || status >= 500
	default:
		return false
	}
}

// NewRetryPolicy returns NoRetry unless cfg allows more than one attempt.
func NewRetryPolicy(cfg config.RetryConfig) RetryPolicy {
	if cfg.MaxAttempts <= 1 {
		return NoRetry{}
	}
	return ExponentialBackoff{
		MaxAttempts: cfg.MaxAttempts,
		InitialWait: cfg.InitialWait,
		MaxWait:     cfg.MaxWait,
		Multiplier:  cfg.Multiplier,
	}
}

type retryGateway struct {
	inner  domain.ChatGateway
	policy RetryPolicy
}

// WithRetry wraps g so failed calls are retried according to policy.
func WithRetry(g domain.ChatGateway, policy RetryPolicy) domain.ChatGateway {
	if _, ok := policy.(NoRetry); ok || policy == nil {
		return g
	}
	return &retryGateway{inner: g, policy: policy}
}

func (r *retryGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.ProviderResponse, error) {
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			return resp, nil
		}

		wait, retry := r.policy.Next(attempt, err)
		if !retry {
			return nil, err
		}

		logger.Get().Warn("Retrying AI gateway call",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, err
		case <-time.After(wait):
		}
	}
}
