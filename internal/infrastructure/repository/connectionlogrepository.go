package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/mappers"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
	"github.com/vpndash/vpndash/internal/shared/db"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type ConnectionLogRepository struct {
	db     *gorm.DB
	mapper mappers.ConnectionMapper
	logger logger.Interface
}

func NewConnectionLogRepository(db *gorm.DB, logger logger.Interface) connection.LogRepository {
	return &ConnectionLogRepository{
		db:     db,
		mapper: mappers.NewConnectionMapper(),
		logger: logger,
	}
}

func (r *ConnectionLogRepository) Append(ctx context.Context, l *connection.Log) error {
	model := r.mapper.LogToModel(l)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append connection log", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to append connection log: %w", err)
	}

	return l.SetID(model.ID)
}

// ListByUserID orders by timestamp and then id, both descending, so rows
// sharing a timestamp still come back in insertion-reverse order.
func (r *ConnectionLogRepository) ListByUserID(ctx context.Context, userID uint, limit int) ([]*connection.Log, error) {
	var list []*models.ConnectionLogModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list connection logs", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list connection logs: %w", err)
	}

	logs, err := r.mapper.LogToEntities(list)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*connection.Log{}
	}
	return logs, nil
}

type logTotalsRow struct {
	Total         int64
	Failed        int64
	TotalDuration int64
}

func (r *ConnectionLogRepository) Totals(ctx context.Context, userID uint) (connection.LogTotals, error) {
	var row logTotalsRow

	err := db.GetTxFromContext(ctx, r.db).Model(&models.ConnectionLogModel{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS failed, "+
			"COALESCE(SUM(duration), 0) AS total_duration", string(connection.LogStatusFailed)).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate connection logs", "user_id", userID, "error", err)
		return connection.LogTotals{}, fmt.Errorf("failed to aggregate connection logs: %w", err)
	}

	return connection.LogTotals{
		Total:         row.Total,
		Failed:        row.Failed,
		TotalDuration: row.TotalDuration,
	}, nil
}
