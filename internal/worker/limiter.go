package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces batch intake across all workers with a shared token
// bucket. A nil Limiter imposes no limit.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a batch pacing limiter. A rate of zero or less
// disables pacing entirely.
func NewLimiter(docsPerSecond float64, burst int) *Limiter {
	if docsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(docsPerSecond), burst)}
}

// Wait blocks until the next document may start, or the context ends
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a document may start without waiting
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
