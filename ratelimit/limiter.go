// Package ratelimit provides keyed token-bucket rate limiting.
package ratelimit

import (
	"context"
	"sync"

	"github.com/fwojciec/copypasta"
	"golang.org/x/time/rate"
)

var _ copypasta.Limiter = (*KeyLimiter)(nil)

// KeyLimiter keeps a separate token bucket per key, e.g. per host for
// fetches or per credential for model calls. Requests for different keys
// never wait on each other.
type KeyLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewKeyLimiter creates a KeyLimiter allowing rps requests per second per
// key with a burst of 1. A non-positive rps disables limiting.
func NewKeyLimiter(rps float64) *KeyLimiter {
	return NewKeyLimiterWithBurst(rps, 1)
}

// NewKeyLimiterWithBurst creates a KeyLimiter with the given burst size.
func NewKeyLimiterWithBurst(rps float64, burst int) *KeyLimiter {
	return &KeyLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    max(burst, 1),
	}
}

// Wait blocks until the rate limit allows a request for key.
// Returns an error if the context is canceled before the wait completes.
func (l *KeyLimiter) Wait(ctx context.Context, key string) error {
	if l.rps <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
