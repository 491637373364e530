package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
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

func TestRedisEntitlementCache_RoundTrip(t *testing.T) {
	client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	got, err := c.Get(ctx, "cus_1")
	require.NoError(t, err)
	assert.Nil(t, got, "miss returns nil")

	want := entitlement.Entitlement{
		PlanName:       subscription.PlanPremium2,
		Active:         false,
		Lapsing:        true,
		SubscriptionID: "sub_1",
	}
	require.NoError(t, c.Set(ctx, "cus_1", want))

	got, err = c.Get(ctx, "cus_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	ttl, err := client.TTL(ctx, "entitlement:customer:cus_1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Delete(ctx, "cus_1"))
	got, err = c.Get(ctx, "cus_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisEntitlementCache_SetOverwritesStaleFields(t *testing.T) {
	client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "cus_2", entitlement.Entitlement{
		PlanName: subscription.PlanPremium1, Active: true, SubscriptionID: "sub_a",
	}))
	require.NoError(t, c.Set(ctx, "cus_2", entitlement.None))

	got, err := c.Get(ctx, "cus_2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.HasAccess())
	assert.Empty(t, got.SubscriptionID)
}
