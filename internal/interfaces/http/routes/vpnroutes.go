package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/interfaces/http/handlers"
	"github.com/vpndash/vpndash/internal/interfaces/http/middleware"
)

// VPNRouteConfig holds dependencies for session and connection history routes.
type VPNRouteConfig struct {
	VPNHandler        *handlers.VPNHandler
	ConnectionHandler *handlers.ConnectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupVPNRoutes configures VPN session routes.
func SetupVPNRoutes(api *gin.RouterGroup, cfg *VPNRouteConfig) {
	vpn := api.Group("/vpn")
	vpn.Use(cfg.AuthMiddleware.RequireAuth())
	{
		vpn.POST("/start", cfg.VPNHandler.Start)
		vpn.POST("/stop", cfg.VPNHandler.Stop)
		vpn.GET("/status", cfg.VPNHandler.Status)
	}

	connections := api.Group("/connections")
	connections.Use(cfg.AuthMiddleware.RequireAuth())
	{
		connections.GET("/logs", cfg.ConnectionHandler.ListLogs)
		connections.GET("/stats", cfg.ConnectionHandler.GetStats)
	}
}
