package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/mappers"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
	"github.com/vpndash/vpndash/internal/shared/db"
	apperrors "github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type UsageStatsRepository struct {
	db     *gorm.DB
	mapper mappers.UsageStatsMapper
	logger logger.Interface
}

func NewUsageStatsRepository(db *gorm.DB, logger logger.Interface) usage.Repository {
	return &UsageStatsRepository{
		db:     db,
		mapper: mappers.NewUsageStatsMapper(),
		logger: logger,
	}
}

func (r *UsageStatsRepository) Create(ctx context.Context, stats *usage.Stats) error {
	model := r.mapper.ToModel(stats)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Usage stats already exist for user")
		}
		r.logger.Errorw("failed to create usage stats", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create usage stats: %w", err)
	}

	return stats.SetID(model.ID)
}

// GetByUserID returns nil when the user has no row.
func (r *UsageStatsRepository) GetByUserID(ctx context.Context, userID uint) (*usage.Stats, error) {
	var model models.UsageStatsModel

	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get usage stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Update persists the period counters. Live speeds are never written back.
func (r *UsageStatsRepository) Update(ctx context.Context, stats *usage.Stats) error {
	model := r.mapper.ToModel(stats)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.UsageStatsModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"today_usage":     model.TodayUsage,
			"week_usage":      model.WeekUsage,
			"month_usage":     model.MonthUsage,
			"last_accrued_at": model.LastAccruedAt,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update usage stats", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update usage stats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Stats not found")
	}
	return nil
}
