package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type GetConnectionStatsUseCase struct {
	userRepo user.Repository
	logRepo  connection.LogRepository
	logger   logger.Interface
}

func NewGetConnectionStatsUseCase(userRepo user.Repository, logRepo connection.LogRepository, logger logger.Interface) *GetConnectionStatsUseCase {
	return &GetConnectionStatsUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// Execute summarizes the caller's whole log history.
func (uc *GetConnectionStatsUseCase) Execute(ctx context.Context, userSID string) (connection.Summary, error) {
	u, err := common.LookupUser(ctx, uc.userRepo, userSID, uc.logger)
	if err != nil {
		return connection.Summary{}, err
	}

	totals, err := uc.logRepo.Totals(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to aggregate connection logs", "user_id", userSID, "error", err)
		return connection.Summary{}, fmt.Errorf("failed to aggregate connection logs: %w", err)
	}
	return connection.Summarize(totals), nil
}
