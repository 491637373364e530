package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers"
)

// GeoRouteConfig holds dependencies for address lookup routes.
type GeoRouteConfig struct {
	GeoHandler *handlers.GeoHandler
}

// SetupGeoRoutes configures the public address lookup routes.
func SetupGeoRoutes(engine *gin.Engine, cfg *GeoRouteConfig) {
	geo := engine.Group("/geo")
	{
		geo.GET("/search", cfg.GeoHandler.SearchAddress)
		geo.GET("/reverse", cfg.GeoHandler.ReverseGeocode)
		geo.GET("/departments", cfg.GeoHandler.ListDepartments)
	}
}
