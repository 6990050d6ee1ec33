package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimit http.Handler
	now     func() time.Time
}

// WithOnLimitReached replaces the default 429 response. Rate limit headers
// are already set when it runs.
func WithOnLimitReached(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onLimit = h
		}
	}
}

// Middleware rejects requests whose key has no tokens left.
func Middleware(limiter Limiter, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if limiter == nil || key == nil {
		panic("ratelimit.Middleware: limiter and key are required")
	}
	cfg := &middlewareConfig{
		onLimit: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}
			res, err := limiter.Allow(r.Context(), k)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if res.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			wait := math.Ceil(res.RetryAfter(cfg.now()).Seconds())
			h.Set("Retry-After", strconv.Itoa(max(1, int(wait))))
			cfg.onLimit.ServeHTTP(w, r)
		})
	}
}
