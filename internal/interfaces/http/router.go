package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vpndash/vpndash/docs"
	"github.com/vpndash/vpndash/internal/interfaces/http/middleware"
	"github.com/vpndash/vpndash/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CustomLogger(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := c.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.authRateLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		UsageHandler:   c.hdlrs.usageHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupVPNRoutes(api, &routes.VPNRouteConfig{
		VPNHandler:        c.hdlrs.vpnHandler,
		ConnectionHandler: c.hdlrs.connectionHandler,
		AuthMiddleware:    c.authMiddleware,
	})

	routes.SetupServerRoutes(api, &routes.ServerRouteConfig{
		ServerHandler: c.hdlrs.serverHandler,
		HealthHandler: c.hdlrs.healthHandler,
	})
}
