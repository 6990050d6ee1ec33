package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket refills rate tokens every interval up to burst. It is safe for
// concurrent use.
type TokenBucket struct {
	rate     int
	interval time.Duration
	burst    int
	maxKeys  int
	now      func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time // last refill
	seen   time.Time // last Allow
}

// Option configures a TokenBucket.
type Option func(*TokenBucket)

// WithBurst sets the bucket capacity. Values below rate are raised to rate.
func WithBurst(n int) Option {
	return func(tb *TokenBucket) { tb.burst = n }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(tb *TokenBucket) {
		if now != nil {
			tb.now = now
		}
	}
}

// WithMaxKeys bounds the number of tracked keys. Full buckets are evicted first.
func WithMaxKeys(n int) Option {
	return func(tb *TokenBucket) {
		if n > 0 {
			tb.maxKeys = n
		}
	}
}

func NewTokenBucket(rate int, interval time.Duration, opts ...Option) (*TokenBucket, error) {
	if rate <= 0 {
		return nil, ErrInvalidLimit
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	tb := &TokenBucket{
		rate:     rate,
		interval: interval,
		burst:    rate,
		maxKeys:  10_000,
		now:      time.Now,
		buckets:  make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.burst = max(tb.burst, tb.rate)
	return tb, nil
}

func (tb *TokenBucket) Allow(_ context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	now := tb.now()
	perToken := tb.interval / time.Duration(tb.rate)

	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		if len(tb.buckets) >= tb.maxKeys {
			tb.evict(now)
		}
		b = &bucket{tokens: float64(tb.burst), last: now}
		tb.buckets[key] = b
	}
	tb.refill(b, now)
	b.seen = now

	res := Result{Limit: tb.burst}
	if b.tokens >= 1 {
		b.tokens--
		res.Allowed = true
	}
	res.Remaining = int(b.tokens)
	res.ResetAt = now
	if b.tokens < 1 {
		res.ResetAt = now.Add(time.Duration((1 - b.tokens) * float64(perToken)))
	}
	return res, nil
}

func (tb *TokenBucket) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.last)
	if elapsed <= 0 {
		return
	}
	b.tokens = min(float64(tb.burst), b.tokens+elapsed.Seconds()/tb.interval.Seconds()*float64(tb.rate))
	b.last = now
}

// evict drops buckets that have refilled completely. If none have, it drops
// the least recently used one.
func (tb *TokenBucket) evict(now time.Time) {
	var oldestKey string
	var oldest time.Time
	for k, b := range tb.buckets {
		tb.refill(b, now)
		if b.tokens >= float64(tb.burst) {
			delete(tb.buckets, k)
			continue
		}
		if oldestKey == "" || b.seen.Before(oldest) {
			oldestKey, oldest = k, b.seen
		}
	}
	if len(tb.buckets) >= tb.maxKeys && oldestKey != "" {
		delete(tb.buckets, oldestKey)
	}
}
