package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// FeedRouteConfig holds dependencies for timeline and post routes.
type FeedRouteConfig struct {
	PostHandler    *handlers.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFeedRoutes configures the timeline and post routes.
func SetupFeedRoutes(engine *gin.Engine, cfg *FeedRouteConfig) {
	engine.GET("/feed", cfg.AuthMiddleware.RequireAuth(), cfg.PostHandler.GetTimeline)

	posts := engine.Group("/posts")
	{
		posts.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.PostHandler.GetPost)

		authed := posts.Group("", cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("", cfg.PostHandler.CreatePost)
			authed.DELETE("/:id", cfg.PostHandler.DeletePost)
			authed.POST("/:id/comments", cfg.PostHandler.AddComment)
			authed.DELETE("/:id/comments/:commentId", cfg.PostHandler.DeleteComment)
			authed.POST("/:id/likeOrUnlike", cfg.PostHandler.ToggleLike)
		}
	}
}
