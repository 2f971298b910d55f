package mappers

import (
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
)

type UsageStatsMapper interface {
	ToEntity(model *models.UsageStatsModel) *usage.Stats
	ToModel(entity *usage.Stats) *models.UsageStatsModel
}

type UsageStatsMapperImpl struct{}

func NewUsageStatsMapper() UsageStatsMapper {
	return &UsageStatsMapperImpl{}
}

func (m *UsageStatsMapperImpl) ToEntity(model *models.UsageStatsModel) *usage.Stats {
	if model == nil {
		return nil
	}
	return usage.ReconstructStats(usage.StatsSnapshot{
		ID:            model.ID,
		UserID:        model.UserID,
		TodayUsage:    model.TodayUsage,
		WeekUsage:     model.WeekUsage,
		MonthUsage:    model.MonthUsage,
		UploadSpeed:   model.UploadSpeed,
		DownloadSpeed: model.DownloadSpeed,
		AverageSpeed:  model.AverageSpeed,
		LastAccruedAt: model.LastAccruedAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}

func (m *UsageStatsMapperImpl) ToModel(entity *usage.Stats) *models.UsageStatsModel {
	if entity == nil {
		return nil
	}
	return &models.UsageStatsModel{
		ID:            entity.ID(),
		UserID:        entity.UserID(),
		TodayUsage:    entity.TodayUsage(),
		WeekUsage:     entity.WeekUsage(),
		MonthUsage:    entity.MonthUsage(),
		UploadSpeed:   entity.UploadSpeed(),
		DownloadSpeed: entity.DownloadSpeed(),
		AverageSpeed:  entity.AverageSpeed(),
		LastAccruedAt: entity.LastAccruedAt(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}
