package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/routes"
	"github.com/ridecrew/ridecrew/internal/shared/utils"

	_ "github.com/ridecrew/ridecrew/docs"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() error {
	if err := utils.RegisterBindingValidations(handlers.BindingValidations()); err != nil {
		return err
	}

	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Metrics(c.metrics))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.healthCheck)
	c.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := c.hdlrs

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    h.userHandler,
		PostHandler:    h.postHandler,
		BicycleHandler: h.bicycleHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupClubRoutes(c.engine, &routes.ClubRouteConfig{
		ClubHandler:    h.clubHandler,
		PostHandler:    h.postHandler,
		AuthMiddleware: c.authMiddleware,
		PlanMiddleware: c.planMiddleware,
	})
	routes.SetupFeedRoutes(c.engine, &routes.FeedRouteConfig{
		PostHandler:    h.postHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupHikeRoutes(c.engine, &routes.HikeRouteConfig{
		HikeHandler:    h.hikeHandler,
		AuthMiddleware: c.authMiddleware,
		PlanMiddleware: c.planMiddleware,
	})
	routes.SetupBicycleRoutes(c.engine, &routes.BicycleRouteConfig{
		BicycleHandler: h.bicycleHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupGeoRoutes(c.engine, &routes.GeoRouteConfig{
		GeoHandler: h.geoHandler,
	})
	routes.SetupBillingRoutes(c.engine, &routes.BillingRouteConfig{
		BillingHandler: h.billingHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		UserHandler:          h.userHandler,
		ClubHandler:          h.clubHandler,
		PostHandler:          h.postHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	return nil
}

// healthCheck reports whether the database answers.
func (c *Container) healthCheck(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		c.log.Warnw("health check failed", "error", err)
		utils.ErrorResponse(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", gin.H{"status": "ok"})
}
