package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestRate is requests per second allowed per token.
const DefaultRequestRate = 5.0

const (
	minRemaining = 10

	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

// rateLimiter throttles requests proactively with a token bucket and waits for
// the reset time reported by GitHub once the remaining quota runs low.
type rateLimiter struct {
	mu        sync.Mutex
	bucket    *rate.Limiter
	remaining int
	resetAt   time.Time
}

func newRateLimiter(rps float64) *rateLimiter {
	return &rateLimiter{
		bucket:    rate.NewLimiter(rate.Limit(rps), 1),
		remaining: -1,
	}
}

func (x *rateLimiter) Wait(ctx context.Context) error {
	if err := x.bucket.Wait(ctx); err != nil {
		return err
	}

	x.mu.Lock()
	remaining, resetAt := x.remaining, x.resetAt
	x.mu.Unlock()

	if remaining >= 0 && remaining < minRemaining && time.Now().Before(resetAt) {
		timer := time.NewTimer(time.Until(resetAt))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}

func (x *rateLimiter) Update(resp *http.Response) {
	if resp == nil {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if v, err := strconv.Atoi(resp.Header.Get(headerRateRemaining)); err == nil {
		x.remaining = v
	}
	if v, err := strconv.ParseInt(resp.Header.Get(headerRateReset), 10, 64); err == nil {
		x.resetAt = time.Unix(v, 0)
	}
}

type rateLimitTransport struct {
	base    http.RoundTripper
	limiter *rateLimiter
}

func (x *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := x.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := x.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	x.limiter.Update(resp)

	return resp, nil
}
