package models

import (
	"time"

	"github.com/vpndash/vpndash/internal/shared/constants"
)

// ConnectionLogModel is an append-only history row. DataUsed is in MB.
type ConnectionLogModel struct {
	ID             uint      `gorm:"primarykey"`
	SID            string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserID         uint      `gorm:"not null;index:idx_connection_logs_user_time,priority:1"`
	Timestamp      time.Time `gorm:"not null;index:idx_connection_logs_user_time,priority:2"`
	ServerLocation string    `gorm:"not null;size:100"`
	IPAddress      string    `gorm:"not null;size:45"`
	DataUsed       float64   `gorm:"not null;default:0"`
	Duration       int64     `gorm:"not null;default:0"`
	Status         string    `gorm:"not null;size:20"`
	CreatedAt      time.Time
}

func (ConnectionLogModel) TableName() string {
	return constants.TableConnectionLogs
}
