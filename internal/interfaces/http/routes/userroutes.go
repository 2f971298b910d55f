package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/interfaces/http/handlers"
	"github.com/vpndash/vpndash/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile and usage routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	UsageHandler   *handlers.UsageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures the caller's profile and usage routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	user := api.Group("/user")
	user.Use(cfg.AuthMiddleware.RequireAuth())
	{
		user.GET("/profile", cfg.UserHandler.GetProfile)
		user.PUT("/profile", cfg.UserHandler.UpdateProfile)
		user.POST("/change-password", cfg.UserHandler.ChangePassword)
	}

	usage := api.Group("/usage")
	usage.Use(cfg.AuthMiddleware.RequireAuth())
	{
		usage.GET("/stats", cfg.UsageHandler.GetStats)
		usage.GET("/trends", cfg.UsageHandler.GetTrends)
	}
}
