package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/mappers"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
	"github.com/vpndash/vpndash/internal/shared/db"
	apperrors "github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type ConnectionRepository struct {
	db     *gorm.DB
	mapper mappers.ConnectionMapper
	logger logger.Interface
}

func NewConnectionRepository(db *gorm.DB, logger logger.Interface) connection.Repository {
	return &ConnectionRepository{
		db:     db,
		mapper: mappers.NewConnectionMapper(),
		logger: logger,
	}
}

// Create inserts an open session. The unique active_user_id index rejects a
// second open session of the same user.
func (r *ConnectionRepository) Create(ctx context.Context, c *connection.Connection) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("A VPN connection is already active")
		}
		r.logger.Errorw("failed to create connection", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create connection: %w", err)
	}

	return c.SetID(model.ID)
}

// GetBySIDForUser returns nil unless the connection exists and belongs to userID.
func (r *ConnectionRepository) GetBySIDForUser(ctx context.Context, userID uint, sid string) (*connection.Connection, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db).Where("sid = ? AND user_id = ?", sid, userID))
}

// GetActiveByUserID returns the most recent connected row, or nil.
func (r *ConnectionRepository) GetActiveByUserID(ctx context.Context, userID uint) (*connection.Connection, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, connection.StatusConnected.String()).
		Order("start_time DESC"))
}

func (r *ConnectionRepository) first(ctx context.Context, q *gorm.DB) (*connection.Connection, error) {
	var model models.ConnectionModel

	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get connection", "error", err)
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// MarkStopped is a guarded update: only a row that is still connected is
// closed, so of two concurrent stops exactly one affects a row.
func (r *ConnectionRepository) MarkStopped(ctx context.Context, c *connection.Connection) error {
	model := r.mapper.ToModel(c)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ConnectionModel{}).
		Where("id = ? AND status = ?", model.ID, connection.StatusConnected.String()).
		Updates(map[string]any{
			"end_time":       model.EndTime,
			"duration":       model.Duration,
			"data_used":      model.DataUsed,
			"status":         model.Status,
			"active_user_id": nil,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to stop connection", "sid", model.SID, "error", result.Error)
		return fmt.Errorf("failed to stop connection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return connection.ErrAlreadyStopped
	}
	return nil
}
