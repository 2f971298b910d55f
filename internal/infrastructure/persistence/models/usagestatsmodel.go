package models

import (
	"time"

	"github.com/vpndash/vpndash/internal/shared/constants"
)

// UsageStatsModel is the one-per-user usage row.
type UsageStatsModel struct {
	ID            uint    `gorm:"primarykey"`
	UserID        uint    `gorm:"uniqueIndex;not null"`
	TodayUsage    float64 `gorm:"not null;default:0"`
	WeekUsage     float64 `gorm:"not null;default:0"`
	MonthUsage    float64 `gorm:"not null;default:0"`
	UploadSpeed   float64 `gorm:"not null;default:0"`
	DownloadSpeed float64 `gorm:"not null;default:0"`
	AverageSpeed  float64 `gorm:"not null;default:0"`
	LastAccruedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UsageStatsModel) TableName() string {
	return constants.TableUsageStats
}
