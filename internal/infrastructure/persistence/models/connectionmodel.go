package models

import (
	"time"

	"github.com/vpndash/vpndash/internal/shared/constants"
)

// ConnectionModel is a VPN session row.
// ActiveUserID equals UserID while the session is connected and is NULL
// afterwards; its unique index allows one open session per user.
type ConnectionModel struct {
	ID           uint      `gorm:"primarykey"`
	SID          string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserID       uint      `gorm:"not null;index:idx_connections_user_status,priority:1"`
	ActiveUserID *uint     `gorm:"uniqueIndex:uk_connections_active_user"`
	ServerID     string    `gorm:"not null;size:50"`
	StartTime    time.Time `gorm:"not null"`
	EndTime      *time.Time
	Duration     int64   `gorm:"not null;default:0"`
	DataUsed     float64 `gorm:"not null;default:0"`
	Status       string  `gorm:"not null;default:connected;size:20;index:idx_connections_user_status,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ConnectionModel) TableName() string {
	return constants.TableConnections
}
