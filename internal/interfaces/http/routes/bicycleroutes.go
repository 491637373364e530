package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// BicycleRouteConfig holds dependencies for the caller's bicycle inventory routes.
type BicycleRouteConfig struct {
	BicycleHandler *handlers.BicycleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBicycleRoutes configures bicycle routes.
func SetupBicycleRoutes(engine *gin.Engine, cfg *BicycleRouteConfig) {
	bicycles := engine.Group("/bicycles")
	bicycles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		bicycles.GET("", cfg.BicycleHandler.ListMine)
		bicycles.POST("", cfg.BicycleHandler.Create)
		bicycles.PUT("/:id", cfg.BicycleHandler.Update)
		bicycles.DELETE("/:id", cfg.BicycleHandler.Delete)
		bicycles.POST("/:id/photo", cfg.BicycleHandler.UpdatePhoto)
	}
}
