package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/interfaces/http/handlers"
)

// ServerRouteConfig holds dependencies for the public server catalog routes.
type ServerRouteConfig struct {
	ServerHandler *handlers.ServerHandler
	HealthHandler *handlers.HealthHandler
}

// SetupServerRoutes configures routes that need no authentication.
func SetupServerRoutes(api *gin.RouterGroup, cfg *ServerRouteConfig) {
	api.GET("/health", cfg.HealthHandler.Health)

	servers := api.Group("/servers")
	{
		servers.GET("", cfg.ServerHandler.List)
		servers.GET("/locations", cfg.ServerHandler.Locations)
		servers.GET("/recommended", cfg.ServerHandler.Recommended)
	}
}
