package http

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter with a burst of 1.
type hostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

func newHostLimiter(rps float64) *hostLimiter {
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is canceled before the wait completes.
func (l *hostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
