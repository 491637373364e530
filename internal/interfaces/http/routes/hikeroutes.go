package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// HikeRouteConfig holds dependencies for hike routes.
type HikeRouteConfig struct {
	HikeHandler    *handlers.HikeHandler
	AuthMiddleware *middleware.AuthMiddleware
	PlanMiddleware *middleware.PlanMiddleware
}

// SetupHikeRoutes configures hike routes. Creating a hike requires any premium plan.
func SetupHikeRoutes(engine *gin.Engine, cfg *HikeRouteConfig) {
	hikes := engine.Group("/hikes")
	{
		hikes.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.HikeHandler.SearchHikes)
		hikes.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.HikeHandler.GetHike)

		hikes.POST("",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PlanMiddleware.RequirePlan(""),
			cfg.HikeHandler.CreateHike,
		)

		authed := hikes.Group("/:id", cfg.AuthMiddleware.RequireAuth())
		{
			authed.PUT("", cfg.HikeHandler.UpdateHike)
			authed.POST("/cancel", cfg.HikeHandler.CancelHike)
			authed.POST("/trips", cfg.HikeHandler.AddTrip)
			authed.DELETE("/trips/:tripId", cfg.HikeHandler.RemoveTrip)
			authed.POST("/hypeOrUnhype", cfg.HikeHandler.ToggleHype)
			authed.POST("/images", cfg.HikeHandler.AddImage)
		}
	}
}
