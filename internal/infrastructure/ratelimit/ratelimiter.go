// Package ratelimit limits request rates per key (client IP and route).
package ratelimit

import (
	"context"
	"time"
)

// Config allows Requests per Window for one key.
type Config struct {
	Requests int
	Window   time.Duration
}

func (c Config) Enabled() bool {
	return c.Requests > 0 && c.Window > 0
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
