package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile, follow and per-user listing routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	PostHandler    *handlers.PostHandler
	BicycleHandler *handlers.BicycleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	{
		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		me := users.Group("/me", cfg.AuthMiddleware.RequireAuth())
		{
			me.PUT("", cfg.UserHandler.UpdateProfile)
			me.DELETE("", cfg.UserHandler.DeleteAccount)
			me.POST("/avatar", cfg.UserHandler.UpdateAvatar)
		}
		users.PUT("/leaveClub", cfg.AuthMiddleware.RequireAuth(), cfg.UserHandler.LeaveClub)

		users.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.UserHandler.GetUser)
		users.POST("/:id/followOrUnfollow", cfg.AuthMiddleware.RequireAuth(), cfg.UserHandler.ToggleFollow)
		users.GET("/:id/followers", cfg.UserHandler.ListFollowers)
		users.GET("/:id/following", cfg.UserHandler.ListFollowing)
		users.GET("/:id/posts", cfg.AuthMiddleware.OptionalAuth(), cfg.PostHandler.ListUserPosts)
		users.GET("/:id/bicycles", cfg.BicycleHandler.ListByUser)
	}
}
