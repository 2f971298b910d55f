package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type ListLogsQuery struct {
	UserSID string
	// Limit is clamped to [1, MaxLogLimit].
	Limit int
}

type ListLogsUseCase struct {
	userRepo user.Repository
	logRepo  connection.LogRepository
	logger   logger.Interface
}

func NewListLogsUseCase(userRepo user.Repository, logRepo connection.LogRepository, logger logger.Interface) *ListLogsUseCase {
	return &ListLogsUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		logger:   logger,
	}
}

// ClampLogLimit bounds a requested page size.
func ClampLogLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > constants.MaxLogLimit:
		return constants.MaxLogLimit
	default:
		return limit
	}
}

// Execute returns the caller's logs, newest first.
func (uc *ListLogsUseCase) Execute(ctx context.Context, query ListLogsQuery) ([]*connection.Log, error) {
	u, err := common.LookupUser(ctx, uc.userRepo, query.UserSID, uc.logger)
	if err != nil {
		return nil, err
	}

	logs, err := uc.logRepo.ListByUserID(ctx, u.ID(), ClampLogLimit(query.Limit))
	if err != nil {
		uc.logger.Errorw("failed to list connection logs", "user_id", query.UserSID, "error", err)
		return nil, fmt.Errorf("failed to list connection logs: %w", err)
	}
	return logs, nil
}
