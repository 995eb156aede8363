package service

import (
	"context"
	"time"

	"survey-enrichment/internal/config"

	"golang.org/x/time/rate"
)

// Pacer spaces out outbound geocoding calls.
type Pacer interface {
	Pace(ctx context.Context) error
}

// FixedDelayPacer waits a fixed delay on every call.
type FixedDelayPacer struct {
	delay time.Duration
}

// NewFixedDelayPacer creates a pacer that waits delay on every call. A non-positive delay never
// blocks.
func NewFixedDelayPacer(delay time.Duration) *FixedDelayPacer {
	return &FixedDelayPacer{delay: delay}
}

// Pace blocks for the configured delay or until ctx is done.
func (p *FixedDelayPacer) Pace(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LimiterPacer is a token bucket allowing one call per interval with a burst of one.
type LimiterPacer struct {
	limiter *rate.Limiter
}

// NewLimiterPacer creates a token bucket pacer. A non-positive interval never blocks.
func NewLimiterPacer(interval time.Duration) *LimiterPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &LimiterPacer{limiter: rate.NewLimiter(limit, 1)}
}

// Pace waits for the next token.
func (p *LimiterPacer) Pace(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NewPacer returns a LimiterPacer for mode "limiter" and a FixedDelayPacer otherwise.
func NewPacer(mode string, delay time.Duration) Pacer {
	if mode == config.PacingLimiter {
		return NewLimiterPacer(delay)
	}
	return NewFixedDelayPacer(delay)
}
