package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, Config{Requests: 5, Window: time.Minute})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "login:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")

	require.NoError(t, limiter.Reset(ctx, "login:1.2.3.4"))
	allowed, err = limiter.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLocalRateLimiter_Allow(t *testing.T) {
	limiter := NewLocalRateLimiter(Config{Requests: 3, Window: time.Minute})
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, _ := limiter.Allow(ctx, "ip")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow(ctx, "other-ip")
	assert.True(t, allowed)

	now = now.Add(20 * time.Second)
	allowed, _ = limiter.Allow(ctx, "ip")
	assert.True(t, allowed, "one token refills every 20s")

	require.NoError(t, limiter.Reset(ctx, "ip"))
	assert.NotContains(t, limiter.limiters, "ip")
}

func TestLocalRateLimiter_EvictsIdleKeys(t *testing.T) {
	limiter := NewLocalRateLimiter(Config{Requests: 1, Window: time.Second})
	now := time.Now()
	limiter.now = func() time.Time { return now }

	_, _ = limiter.Allow(context.Background(), "a")
	now = now.Add(time.Minute)
	_, _ = limiter.Allow(context.Background(), "b")

	assert.NotContains(t, limiter.limiters, "a")
	assert.Contains(t, limiter.limiters, "b")
}

func TestConfigEnabled(t *testing.T) {
	assert.True(t, Config{Requests: 1, Window: time.Second}.Enabled())
	assert.False(t, Config{Requests: 0, Window: time.Second}.Enabled())
	assert.False(t, Config{Requests: 5}.Enabled())
}
