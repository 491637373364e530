package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/infrastructure/auth"
	"github.com/ridecrew/ridecrew/internal/infrastructure/config"
	"github.com/ridecrew/ridecrew/internal/infrastructure/metrics"
	infraPermission "github.com/ridecrew/ridecrew/internal/infrastructure/permission"
	"github.com/ridecrew/ridecrew/internal/infrastructure/scheduler"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos     *repositories
	txManager db.Transactor

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	planMiddleware       *middleware.PlanMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Adapters
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	enforcer *infraPermission.Enforcer
	storage  services.ObjectStorage
	notifier services.MembershipNotifier
	gateway  subscription.Gateway
	geocoder geo.Geocoder
	renderer markdown.Renderer
	resolver *appentitlement.ServiceImpl
	metrics  *metrics.Registry

	// Background services
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Adapters
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Entitlement - Cache, Resolver
	c.initEntitlement()

	// Section 3: Middlewares
	c.initMiddlewares()

	// Use cases and handlers
	c.initUseCases()
	c.initHandlers()

	// Section 4: Scheduler - Subs Sync, Session Purge
	if err := c.initScheduler(); err != nil {
		return nil, fmt.Errorf("failed to register scheduled jobs: %w", err)
	}

	return c, nil
}

// Engine returns the Gin engine
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartScheduler starts the periodic housekeeping jobs.
func (c *Container) StartScheduler() {
	c.schedulerManager.Start()
}

// Shutdown stops background services and releases the redis connection.
func (c *Container) Shutdown(ctx context.Context) {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(ctx); err != nil {
			c.log.Warnw("scheduler did not stop cleanly", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
