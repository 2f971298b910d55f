package http

import (
	"time"

	connectionUsecases "github.com/vpndash/vpndash/internal/application/connection/usecases"
	serverUsecases "github.com/vpndash/vpndash/internal/application/server/usecases"
	usageUsecases "github.com/vpndash/vpndash/internal/application/usage/usecases"
	"github.com/vpndash/vpndash/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	refreshTokenUC   *usecases.RefreshTokenUseCase
	logoutUC         *usecases.LogoutUseCase
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	changePasswordUC *usecases.ChangePasswordUseCase

	// Usage
	getUsageStatsUC *usageUsecases.GetUsageStatsUseCase
	getTrendsUC     *usageUsecases.GetTrendsUseCase

	// VPN sessions
	startSessionUC       *connectionUsecases.StartSessionUseCase
	stopSessionUC        *connectionUsecases.StopSessionUseCase
	getStatusUC          *connectionUsecases.GetStatusUseCase
	listLogsUC           *connectionUsecases.ListLogsUseCase
	getConnectionStatsUC *connectionUsecases.GetConnectionStatsUseCase

	// Servers
	listServersUC    *serverUsecases.ListServersUseCase
	listLocationsUC  *serverUsecases.ListLocationsUseCase
	getRecommendedUC *serverUsecases.GetRecommendedServerUseCase
}

func (c *Container) initUseCases() {
	repos := c.repos
	svc := c.svc
	log := c.log

	policy := usecases.SubscriptionPolicy{
		Plan:  c.cfg.Subscription.DefaultPlan,
		Trial: time.Duration(c.cfg.Subscription.TrialDays) * 24 * time.Hour,
	}

	c.ucs = &allUseCases{
		registerUC: usecases.NewRegisterUseCase(
			repos.userRepo, repos.usageStatsRepo, svc.hasher, svc.txManager,
			svc.email, svc.markdown, policy, svc.clock, log,
		),
		loginUC:          usecases.NewLoginUseCase(repos.userRepo, svc.hasher, svc.jwtSvc, svc.clock, log),
		refreshTokenUC:   usecases.NewRefreshTokenUseCase(repos.userRepo, svc.jwtSvc, svc.revoker, log),
		logoutUC:         usecases.NewLogoutUseCase(svc.revoker, svc.jwtSvc.RefreshLifetime(), svc.clock, log),
		getProfileUC:     usecases.NewGetProfileUseCase(repos.userRepo, log),
		updateProfileUC:  usecases.NewUpdateProfileUseCase(repos.userRepo, svc.markdown, svc.clock, log),
		changePasswordUC: usecases.NewChangePasswordUseCase(repos.userRepo, svc.hasher, svc.email, svc.clock, log),

		getUsageStatsUC: usageUsecases.NewGetUsageStatsUseCase(
			repos.userRepo, repos.usageStatsRepo, repos.connectionRepo, svc.telemetry, svc.clock, log,
		),
		getTrendsUC: usageUsecases.NewGetTrendsUseCase(),

		startSessionUC: connectionUsecases.NewStartSessionUseCase(
			repos.userRepo, repos.connectionRepo, svc.catalog, svc.clock, log,
		),
		stopSessionUC: connectionUsecases.NewStopSessionUseCase(
			repos.userRepo, repos.connectionRepo, repos.connectionLogRepo, repos.usageStatsRepo,
			svc.catalog, svc.telemetry, svc.txManager, svc.clock, log,
		),
		getStatusUC:          connectionUsecases.NewGetStatusUseCase(repos.userRepo, repos.connectionRepo, svc.clock, log),
		listLogsUC:           connectionUsecases.NewListLogsUseCase(repos.userRepo, repos.connectionLogRepo, log),
		getConnectionStatsUC: connectionUsecases.NewGetConnectionStatsUseCase(repos.userRepo, repos.connectionLogRepo, log),

		listServersUC:    serverUsecases.NewListServersUseCase(svc.catalog),
		listLocationsUC:  serverUsecases.NewListLocationsUseCase(svc.catalog),
		getRecommendedUC: serverUsecases.NewGetRecommendedServerUseCase(svc.catalog),
	}
}
