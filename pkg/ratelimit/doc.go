// Package ratelimit throttles requests per key with an in-memory token bucket.
//
//	limiter, _ := ratelimit.NewTokenBucket(5, time.Minute, ratelimit.WithBurst(10))
//	r.With(ratelimit.Middleware(limiter, clientip.Key)).Post("/contact", submit)
//
// The middleware fails open: requests without a key, or for which the limiter
// errors, are served.
package ratelimit
