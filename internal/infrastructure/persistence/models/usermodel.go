package models

import (
	"time"

	"github.com/vpndash/vpndash/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                 uint      `gorm:"primarykey"`
	SID                string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name               string    `gorm:"not null;size:100"`
	Email              string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash       string    `gorm:"not null;size:255"`
	SubscriptionPlan   string    `gorm:"not null;default:free;size:20"`
	SubscriptionExpiry time.Time `gorm:"not null"`
	TotalDataUsed      float64   `gorm:"not null;default:0"`
	LastLogin          time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
