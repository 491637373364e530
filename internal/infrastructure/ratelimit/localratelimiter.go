package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalRateLimiter keeps one token bucket per key in process memory. Used when
// redis is disabled; limits are then per instance.
type LocalRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalRateLimiter(config Config) *LocalRateLimiter {
	return &LocalRateLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Limit(float64(config.Requests) / config.Window.Seconds()),
		burst:    config.Requests,
		idleTTL:  2 * config.Window,
		now:      time.Now,
	}
}

func (l *LocalRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1), nil
}

func (l *LocalRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
	return nil
}

func (l *LocalRateLimiter) evictIdle(now time.Time) {
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}
}
