package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for entitlement and subscription routes.
type BillingRouteConfig struct {
	BillingHandler *handlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBillingRoutes configures billing routes.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	billing := engine.Group("/billing")
	billing.Use(cfg.AuthMiddleware.RequireAuth())
	{
		billing.GET("/entitlement", cfg.BillingHandler.GetEntitlement)
		billing.POST("/checkout", cfg.BillingHandler.StartCheckout)

		billing.GET("/subscriptions", cfg.BillingHandler.ListSubscriptions)
		billing.POST("/subscriptions/:subId/confirm", cfg.BillingHandler.ConfirmPurchase)
		billing.POST("/subscriptions/:subId/cancel", cfg.BillingHandler.CancelSubscription)
		billing.POST("/subscriptions/:subId/resume", cfg.BillingHandler.ResumeSubscription)
	}
}
