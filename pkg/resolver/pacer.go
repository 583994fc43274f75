package resolver

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out quote fetches
type Pacer interface {
	Wait(ctx context.Context) error
}

// RatePacer waits at least delay before every fetch. The limiter is shared by all passes
// using the pacer, so concurrent documents don't multiply the request rate.
type RatePacer struct {
	delay   time.Duration
	limiter *rate.Limiter
}

// NewRatePacer makes a pacer allowing one fetch per delay. Non-positive delay disables pacing.
func NewRatePacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return NoPacer{}
	}
	return &RatePacer{delay: delay, limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks for the longer of the pacing delay and the limiter reservation.
// The reservation is returned to the limiter if ctx is done first.
func (p *RatePacer) Wait(ctx context.Context) error {
	res := p.limiter.Reserve()
	timer := time.NewTimer(max(res.Delay(), p.delay))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		res.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoPacer never waits, only honors context cancellation
type NoPacer struct{}

// Wait returns ctx error if the context is done
func (NoPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
