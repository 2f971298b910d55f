package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/id"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type StartSessionCommand struct {
	UserSID  string
	ServerID string
}

type StartSessionUseCase struct {
	userRepo user.Repository
	connRepo connection.Repository
	catalog  server.Catalog
	clock    biztime.Clock
	logger   logger.Interface
}

func NewStartSessionUseCase(
	userRepo user.Repository,
	connRepo connection.Repository,
	catalog server.Catalog,
	clock biztime.Clock,
	logger logger.Interface,
) *StartSessionUseCase {
	return &StartSessionUseCase{
		userRepo: userRepo,
		connRepo: connRepo,
		catalog:  catalog,
		clock:    clock,
		logger:   logger,
	}
}

// Execute opens a connection on the requested server, server1 when none is given.
func (uc *StartSessionUseCase) Execute(ctx context.Context, cmd StartSessionCommand) (*connection.Connection, error) {
	serverID := cmd.ServerID
	if serverID == "" {
		serverID = server.DefaultServerID
	}
	if _, ok := uc.catalog.Get(serverID); !ok {
		return nil, errors.NewBadRequestError("Unknown server", serverID)
	}

	u, err := common.LookupUser(ctx, uc.userRepo, cmd.UserSID, uc.logger)
	if err != nil {
		return nil, err
	}

	active, err := uc.connRepo.GetActiveByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to get active connection", "user_id", cmd.UserSID, "error", err)
		return nil, fmt.Errorf("failed to get active connection: %w", err)
	}
	if active != nil {
		return nil, errors.NewConflictError("A VPN connection is already active", active.SID())
	}

	conn, err := connection.NewConnection(u.ID(), serverID, uc.clock.Now(), id.NewConnectionID)
	if err != nil {
		uc.logger.Errorw("failed to create connection aggregate", "error", err)
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	// a concurrent start that passed the check above loses on the unique index
	if err := uc.connRepo.Create(ctx, conn); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to start session", "user_id", cmd.UserSID, "error", err)
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	uc.logger.Infow("vpn session started",
		"user_id", cmd.UserSID,
		"connection_id", conn.SID(),
		"server_id", serverID,
	)
	return conn, nil
}
