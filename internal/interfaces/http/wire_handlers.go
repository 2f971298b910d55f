package http

import (
	"fmt"

	"github.com/vpndash/vpndash/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	usageHandler      *handlers.UsageHandler
	vpnHandler        *handlers.VPNHandler
	connectionHandler *handlers.ConnectionHandler
	serverHandler     *handlers.ServerHandler
	healthHandler     *handlers.HealthHandler
}

func (c *Container) initHandlers() error {
	ucs := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	c.hdlrs = &allHandlers{
		authHandler:       handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.refreshTokenUC, ucs.logoutUC, log.Named("auth")),
		userHandler:       handlers.NewUserHandler(ucs.getProfileUC, ucs.updateProfileUC, ucs.changePasswordUC, log.Named("user")),
		usageHandler:      handlers.NewUsageHandler(ucs.getUsageStatsUC, ucs.getTrendsUC, log.Named("usage")),
		vpnHandler:        handlers.NewVPNHandler(ucs.startSessionUC, ucs.stopSessionUC, ucs.getStatusUC, log.Named("vpn")),
		connectionHandler: handlers.NewConnectionHandler(ucs.listLogsUC, ucs.getConnectionStatsUC, log.Named("connections")),
		serverHandler:     handlers.NewServerHandler(ucs.listServersUC, ucs.listLocationsUC, ucs.getRecommendedUC),
		healthHandler:     handlers.NewHealthHandler(sqlDB),
	}
	return nil
}
