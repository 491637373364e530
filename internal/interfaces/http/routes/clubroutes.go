package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// ClubRouteConfig holds dependencies for club directory and membership routes.
type ClubRouteConfig struct {
	ClubHandler    *handlers.ClubHandler
	PostHandler    *handlers.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
	PlanMiddleware *middleware.PlanMiddleware
}

// SetupClubRoutes configures club routes. Club admin checks happen in the use
// cases, founding a club requires the top-tier plan.
func SetupClubRoutes(engine *gin.Engine, cfg *ClubRouteConfig) {
	clubs := engine.Group("/clubs")
	{
		clubs.GET("", cfg.ClubHandler.ListClubs)
		clubs.POST("",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PlanMiddleware.RequirePlan(subscription.PlanPremium2),
			cfg.ClubHandler.CreateClub,
		)

		clubs.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.ClubHandler.GetClub)
		clubs.GET("/:id/members", cfg.ClubHandler.ListMembers)
		clubs.GET("/:id/posts", cfg.AuthMiddleware.OptionalAuth(), cfg.PostHandler.ListClubPosts)

		member := clubs.Group("/:id", cfg.AuthMiddleware.RequireAuth())
		{
			member.PUT("", cfg.ClubHandler.UpdateClub)
			member.DELETE("", cfg.ClubHandler.DeleteClub)
			member.POST("/avatar", cfg.ClubHandler.UpdateAvatar)
			member.POST("/posts", cfg.PostHandler.CreateClubPost)

			member.POST("/requestToJoin", cfg.ClubHandler.RequestToJoin)
			member.POST("/acceptRequestToJoin", cfg.ClubHandler.AcceptRequestToJoin)
			member.DELETE("/denyRequestToJoin", cfg.ClubHandler.DenyRequestToJoin)
			member.GET("/showJoinRequests", cfg.ClubHandler.ShowJoinRequests)
			member.POST("/expel", cfg.ClubHandler.ExpelMember)
			member.POST("/changeAdmin", cfg.ClubHandler.ChangeAdmin)
			member.POST("/followOrUnfollow", cfg.ClubHandler.ToggleFollow)
		}
	}
}
