package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-estudia/internal/config"
	"med-estudia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGateway struct {
	errs  []error
	calls int
}

func (g *scriptedGateway) Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.ProviderResponse, error) {
	defer func() { g.calls++ }()
	if g.calls < len(g.errs) && g.errs[g.calls] != nil {
		return nil, g.errs[g.calls]
	}
	return &domain.ProviderResponse{Choices: []domain.ProviderChoice{{Content: "ok"}}}, nil
}

func fastBackoff() ExponentialBackoff {
	return ExponentialBackoff{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestWithRetry_NoRetryReturnsInner(t *testing.T) {
	inner := &scriptedGateway{}
	assert.Same(t, inner, WithRetry(inner, NoRetry{}))
	assert.Same(t, inner, WithRetry(inner, nil))
}

func TestWithRetry_NoRetryIsSingleAttempt(t *testing.T) {
	inner := &scriptedGateway{errs: []error{domain.NewRateLimitedError(nil)}}
	_, err := WithRetry(inner, NewRetryPolicy(config.RetryConfig{MaxAttempts: 1})).Complete(context.Background(), "s", "u")
	assert.Equal(t, domain.CodeGatewayRateLimited, domain.CodeOf(err))
	assert.Equal(t, 1, inner.calls)
}

func TestWithRetry_TransientThenSuccess(t *testing.T) {
	inner := &scriptedGateway{errs: []error{
		domain.NewRateLimitedError(nil),
		domain.NewUpstreamError(503, "unavailable", nil),
	}}

	resp, err := WithRetry(inner, fastBackoff()).Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	content, _ := resp.FirstContent()
	assert.Equal(t, "ok", content)
	assert.Equal(t, 3, inner.calls)
}

func TestWithRetry_StopsAtMaxAttempts(t *testing.T) {
	upstream := domain.NewUpstreamError(502, "bad gateway", nil)
	inner := &scriptedGateway{errs: []error{upstream, upstream, upstream, upstream}}

	_, err := WithRetry(inner, fastBackoff()).Complete(context.Background(), "s", "u")
	assert.Same(t, upstream, err)
	assert.Equal(t, 3, inner.calls)
}

func TestWithRetry_PermanentErrorsNotRetried(t *testing.T) {
	permanent := []error{
		domain.NewPaymentRequiredError(nil),
		domain.NewConfigurationError(domain.MsgMissingCredential),
		domain.NewUpstreamError(400, "bad request", nil),
		errors.New("plain"),
	}
	for _, perr := range permanent {
		inner := &scriptedGateway{errs: []error{perr}}
		_, err := WithRetry(inner, fastBackoff()).Complete(context.Background(), "s", "u")
		assert.Equal(t, perr, err)
		assert.Equal(t, 1, inner.calls, "error %v", perr)
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &scriptedGateway{errs: []error{domain.NewRateLimitedError(nil), nil}}
	policy := ExponentialBackoff{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}

	_, err := WithRetry(inner, policy).Complete(ctx, "s", "u")
	assert.Equal(t, domain.CodeGatewayRateLimited, domain.CodeOf(err))
	assert.Equal(t, 1, inner.calls)
}

func TestExponentialBackoff_WaitGrowsAndCaps(t *testing.T) {
	b := ExponentialBackoff{MaxAttempts: 10, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}
	err := domain.NewRateLimitedError(nil)

	wait, ok := b.Next(0, err)
	require.True(t, ok)
	assert.InDelta(t, float64(100*time.Millisecond), float64(wait), float64(20*time.Millisecond))

	wait, ok = b.Next(1, err)
	require.True(t, ok)
	assert.InDelta(t, float64(200*time.Millisecond), float64(wait), float64(40*time.Millisecond))

	wait, ok = b.Next(5, err)
	require.True(t, ok)
	assert.InDelta(t, float64(300*time.Millisecond), float64(wait), float64(60*time.Millisecond))

	_, ok = b.Next(9, err)
	assert.False(t, ok)
}

func TestRetryable_ContextErrors(t *testing.T) {
	wrapped := domain.NewUpstreamError(0, "", context.DeadlineExceeded)
	assert.False(t, Retryable(wrapped))
	assert.True(t, Retryable(domain.NewUpstreamError(0, "", errors.New("connection refused"))))
}
