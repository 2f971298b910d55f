package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type GetUsageStatsUseCase struct {
	userRepo  user.Repository
	statsRepo usage.Repository
	connRepo  connection.Repository
	telemetry connection.TelemetryGenerator
	clock     biztime.Clock
	logger    logger.Interface
}

func NewGetUsageStatsUseCase(
	userRepo user.Repository,
	statsRepo usage.Repository,
	connRepo connection.Repository,
	telemetry connection.TelemetryGenerator,
	clock biztime.Clock,
	logger logger.Interface,
) *GetUsageStatsUseCase {
	return &GetUsageStatsUseCase{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		connRepo:  connRepo,
		telemetry: telemetry,
		clock:     clock,
		logger:    logger,
	}
}

// Execute returns the caller's counters for the current day, week and month.
// While a session is open the speeds are live readings.
func (uc *GetUsageStatsUseCase) Execute(ctx context.Context, userSID string) (*usage.Stats, error) {
	u, err := common.LookupUser(ctx, uc.userRepo, userSID, uc.logger)
	if err != nil {
		return nil, err
	}

	var (
		stats  *usage.Stats
		active *connection.Connection
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = uc.statsRepo.GetByUserID(gctx, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to get usage stats", "user_id", userSID, "error", err)
			return fmt.Errorf("failed to get usage stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		active, err = uc.connRepo.GetActiveByUserID(gctx, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to get active connection", "user_id", userSID, "error", err)
			return fmt.Errorf("failed to get active connection: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, errors.NewNotFoundError("Usage stats not found")
	}

	stats.RollOver(uc.clock.Now())
	if active != nil {
		stats.OverlaySpeeds(uc.telemetry.LiveSpeeds())
	}

	return stats, nil
}
