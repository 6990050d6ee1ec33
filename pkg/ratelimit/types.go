package ratelimit

import (
	"context"
	"net/http"
	"time"
)

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the next token becomes available.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request, or 0 when allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Limiter consumes one unit for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(*http.Request) string
