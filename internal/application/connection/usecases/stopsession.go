package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/db"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/id"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

const mbPerGB = 1024

type StopSessionCommand struct {
	UserSID      string
	ConnectionID string
}

type StopSessionUseCase struct {
	userRepo  user.Repository
	connRepo  connection.Repository
	logRepo   connection.LogRepository
	statsRepo usage.Repository
	catalog   server.Catalog
	telemetry connection.TelemetryGenerator
	txManager db.Transactor
	clock     biztime.Clock
	logger    logger.Interface
}

func NewStopSessionUseCase(
	userRepo user.Repository,
	connRepo connection.Repository,
	logRepo connection.LogRepository,
	statsRepo usage.Repository,
	catalog server.Catalog,
	telemetry connection.TelemetryGenerator,
	txManager db.Transactor,
	clock biztime.Clock,
	logger logger.Interface,
) *StopSessionUseCase {
	return &StopSessionUseCase{
		userRepo:  userRepo,
		connRepo:  connRepo,
		logRepo:   logRepo,
		statsRepo: statsRepo,
		catalog:   catalog,
		telemetry: telemetry,
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

// Execute closes the caller's connection exactly once. Closing the row,
// appending the log and adding the usage to the user and the usage counters
// happen in one transaction.
func (uc *StopSessionUseCase) Execute(ctx context.Context, cmd StopSessionCommand) (*connection.Connection, error) {
	if cmd.ConnectionID == "" {
		return nil, errors.NewBadRequestError("Connection ID is required")
	}

	u, err := common.LookupUser(ctx, uc.userRepo, cmd.UserSID, uc.logger)
	if err != nil {
		return nil, err
	}

	var stopped *connection.Connection
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		conn, err := uc.connRepo.GetBySIDForUser(txCtx, u.ID(), cmd.ConnectionID)
		if err != nil {
			return err
		}
		if conn == nil {
			return errors.NewNotFoundError("Connection not found")
		}

		now := uc.clock.Now()
		dataMB := uc.telemetry.SessionDataMB()
		dataGB := dataMB / mbPerGB

		if err := conn.Stop(now, dataGB); err != nil {
			return err
		}
		if err := uc.connRepo.MarkStopped(txCtx, conn); err != nil {
			return err
		}

		location := conn.ServerID()
		if def, ok := uc.catalog.Get(conn.ServerID()); ok {
			location = def.Location
		}

		entry, err := connection.NewSessionLog(conn, location, uc.telemetry.ClientIP(), dataMB, id.NewConnectionLogID)
		if err != nil {
			return fmt.Errorf("failed to build connection log: %w", err)
		}
		if err := uc.logRepo.Append(txCtx, entry); err != nil {
			return err
		}

		if err := uc.userRepo.AddDataUsed(txCtx, u.ID(), dataGB); err != nil {
			return err
		}

		if err := uc.accrueUsage(txCtx, u.ID(), dataGB, now); err != nil {
			return err
		}

		stopped = conn
		return nil
	})
	if err != nil {
		if stderrors.Is(err, connection.ErrAlreadyStopped) {
			return nil, errors.NewConflictError("Connection already stopped")
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to stop session",
			"user_id", cmd.UserSID,
			"connection_id", cmd.ConnectionID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to stop session: %w", err)
	}

	uc.logger.Infow("vpn session stopped",
		"user_id", cmd.UserSID,
		"connection_id", stopped.SID(),
		"duration", stopped.Duration(),
		"data_used_gb", stopped.DataUsed(),
	)
	return stopped, nil
}

func (uc *StopSessionUseCase) accrueUsage(ctx context.Context, userID uint, gb float64, now time.Time) error {
	stats, err := uc.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if stats == nil {
		// users created before usage rows existed
		stats, err = usage.NewStats(userID, now)
		if err != nil {
			return err
		}
		if err := stats.Accrue(gb, now); err != nil {
			return err
		}
		return uc.statsRepo.Create(ctx, stats)
	}

	if err := stats.Accrue(gb, now); err != nil {
		return err
	}
	return uc.statsRepo.Update(ctx, stats)
}
