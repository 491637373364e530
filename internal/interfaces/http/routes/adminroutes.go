package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/domain/permission"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for platform moderation routes.
type AdminRouteConfig struct {
	UserHandler          *handlers.UserHandler
	ClubHandler          *handlers.ClubHandler
	PostHandler          *handlers.PostHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/users",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionRead),
			cfg.UserHandler.ListUsers,
		)
		admin.DELETE("/clubs/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceClubs, permission.ActionDelete),
			cfg.ClubHandler.ModerateDeleteClub,
		)
		admin.DELETE("/posts/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourcePosts, permission.ActionDelete),
			cfg.PostHandler.ModerateDeletePost,
		)
	}
}
