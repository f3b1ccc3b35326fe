package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/scrape"
	"golang.org/x/time/rate"
)

var _ scrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host with its own token bucket.
// Hosts are compared case-insensitively, without a port or "www." prefix,
// so arxiv.org and www.arxiv.org:443 share one budget.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst lets up to n requests to a host through back to back.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// NewDomainLimiter allows rps requests per second to each host. A
// non-positive rps disables limiting.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   1,
	}
	if rps <= 0 {
		d.limit = rate.Inf
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	key := limiterKey(host)

	d.mu.Lock()
	bucket, ok := d.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(d.limit, d.burst)
		d.buckets[key] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}

// Hosts returns the number of distinct hosts seen so far.
func (d *DomainLimiter) Hosts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buckets)
}

func limiterKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
