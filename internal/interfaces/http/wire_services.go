package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/permission"
	"github.com/ridecrew/ridecrew/internal/infrastructure/auth"
	"github.com/ridecrew/ridecrew/internal/infrastructure/cache"
	"github.com/ridecrew/ridecrew/internal/infrastructure/config"
	"github.com/ridecrew/ridecrew/internal/infrastructure/email"
	"github.com/ridecrew/ridecrew/internal/infrastructure/geocoding"
	"github.com/ridecrew/ridecrew/internal/infrastructure/metrics"
	"github.com/ridecrew/ridecrew/internal/infrastructure/payment"
	infraPermission "github.com/ridecrew/ridecrew/internal/infrastructure/permission"
	"github.com/ridecrew/ridecrew/internal/infrastructure/ratelimit"
	"github.com/ridecrew/ridecrew/internal/infrastructure/scheduler"
	"github.com/ridecrew/ridecrew/internal/infrastructure/storage"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/services/markdown"
)

const scheduledJobTimeout = 10 * time.Minute

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Adapters
// ============================================================

// initInfrastructure connects redis when enabled, builds the repositories and
// the adapters for storage, billing, geocoding, email and casbin.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg)
		if err != nil {
			return err
		}
		c.redis = client
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}

	c.repos = newRepositories(c.db, log)
	c.txManager = db.NewTransactionManager(c.db)

	c.metrics = metrics.NewRegistry()
	c.storage = storage.New(cfg.Storage, log.Named("storage"))
	c.gateway = payment.New(cfg.Billing, log.Named("billing"))
	c.geocoder = geocoding.NewClient(cfg.Geocoding, log.Named("geocoding"))
	c.notifier = email.NewMembershipNotifier(cfg.Email, cfg.Server.BaseURL, log.Named("email"))
	c.renderer = markdown.NewRenderer()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := infraPermission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedPolicies(permission.DefaultPolicies()); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// ============================================================
// Section 2: Entitlement - Cache, Resolver
// ============================================================

func (c *Container) initEntitlement() {
	var entitlementCache entitlement.Cache
	ttl := time.Duration(c.cfg.Entitlement.CacheTTLSeconds) * time.Second
	if c.redis != nil && ttl > 0 {
		entitlementCache = cache.NewRedisEntitlementCache(c.redis, ttl, c.log)
	}
	c.resolver = appentitlement.NewService(c.gateway, entitlementCache, c.metrics, c.log.Named("entitlement"))
}

// ============================================================
// Section 3: Middlewares
// ============================================================

func (c *Container) initMiddlewares() {
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.sessionRepo, log)
	c.planMiddleware = middleware.NewPlanMiddleware(c.repos.userRepo, c.resolver, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	limitCfg := ratelimit.Config{Requests: c.cfg.RateLimit.Requests, Window: c.cfg.RateLimit.Window()}
	var limiter ratelimit.RateLimiter
	switch {
	case !limitCfg.Enabled():
		log.Infow("rate limiting disabled")
	case c.redis != nil:
		limiter = ratelimit.NewRedisRateLimiter(c.redis, limitCfg)
	default:
		limiter = ratelimit.NewLocalRateLimiter(limitCfg)
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, log)
}

// ============================================================
// Section 4: Scheduler - Subs Sync, Session Purge
// ============================================================

func (c *Container) initScheduler() error {
	c.schedulerManager = scheduler.NewSchedulerManager(c.log.Named("scheduler"))

	if spec := c.cfg.Scheduler.SubsSyncSpec; spec != "" {
		if err := c.schedulerManager.Register("subs_sync", spec, scheduledJobTimeout, c.ucs.syncSubsUC); err != nil {
			return err
		}
	}
	if spec := c.cfg.Scheduler.SessionPurgeSpec; spec != "" {
		if err := c.schedulerManager.Register("session_purge", spec, scheduledJobTimeout, c.ucs.purgeSessionsUC); err != nil {
			return err
		}
	}
	return nil
}
