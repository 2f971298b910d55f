package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// StatusResult is empty when the user has no open session.
type StatusResult struct {
	Connection     *connection.Connection
	ConnectionTime int64
}

func (r StatusResult) IsConnected() bool {
	return r.Connection != nil
}

type GetStatusUseCase struct {
	userRepo user.Repository
	connRepo connection.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewGetStatusUseCase(userRepo user.Repository, connRepo connection.Repository, clock biztime.Clock, logger logger.Interface) *GetStatusUseCase {
	return &GetStatusUseCase{
		userRepo: userRepo,
		connRepo: connRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, userSID string) (StatusResult, error) {
	u, err := common.LookupUser(ctx, uc.userRepo, userSID, uc.logger)
	if err != nil {
		return StatusResult{}, err
	}

	active, err := uc.connRepo.GetActiveByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to get active connection", "user_id", userSID, "error", err)
		return StatusResult{}, fmt.Errorf("failed to get active connection: %w", err)
	}
	if active == nil {
		return StatusResult{}, nil
	}

	return StatusResult{
		Connection:     active,
		ConnectionTime: active.ConnectionTime(uc.clock.Now()),
	}, nil
}
