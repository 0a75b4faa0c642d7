package client

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// domainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter with a burst of 1, so concurrent
// fetches of different domains proceed while fetches within a domain
// are paced.
type domainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

func newDomainLimiter(rps float64) *domainLimiter {
	return &domainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait
// completes.
func (d *domainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// domainOf extracts the hostname for rate-limiting purposes.
// Unparseable URLs share a single bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
