package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

const (
	entitlementKeyPrefix = "entitlement:customer:"
	fieldPlanName        = "plan_name"
	fieldActive          = "active"
	fieldLapsing         = "lapsing"
	fieldSubscriptionID  = "subscription_id"
)

// RedisEntitlementCache stores resolved entitlements in a Redis hash per billing customer.
type RedisEntitlementCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisEntitlementCache creates a new Redis-based entitlement cache
func NewRedisEntitlementCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisEntitlementCache {
	return &RedisEntitlementCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisEntitlementCache) key(billingCustomerID string) string {
	return entitlementKeyPrefix + billingCustomerID
}

// Get returns nil without error on a cache miss.
func (c *RedisEntitlementCache) Get(ctx context.Context, billingCustomerID string) (*entitlement.Entitlement, error) {
	result, err := c.client.HGetAll(ctx, c.key(billingCustomerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlement from cache: %w", err)
	}

	if len(result) == 0 {
		return nil, nil // Cache miss
	}

	return &entitlement.Entitlement{
		PlanName:       subscription.PlanName(result[fieldPlanName]),
		Active:         result[fieldActive] == "1",
		Lapsing:        result[fieldLapsing] == "1",
		SubscriptionID: result[fieldSubscriptionID],
	}, nil
}

// Set stores the entitlement for the configured TTL.
func (c *RedisEntitlementCache) Set(ctx context.Context, billingCustomerID string, e entitlement.Entitlement) error {
	key := c.key(billingCustomerID)

	fields := map[string]interface{}{
		fieldPlanName:       string(e.PlanName),
		fieldActive:         boolToInt(e.Active),
		fieldLapsing:        boolToInt(e.Lapsing),
		fieldSubscriptionID: e.SubscriptionID,
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, c.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set entitlement in cache: %w", err)
	}

	c.logger.Debugw("entitlement cached",
		"billing_customer_id", billingCustomerID,
		"plan_name", e.PlanName,
		"active", e.Active,
		"lapsing", e.Lapsing,
	)

	return nil
}

// Delete removes the cached entitlement of a customer.
func (c *RedisEntitlementCache) Delete(ctx context.Context, billingCustomerID string) error {
	if err := c.client.Del(ctx, c.key(billingCustomerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}

	c.logger.Debugw("entitlement cache invalidated",
		"billing_customer_id", billingCustomerID,
	)

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
