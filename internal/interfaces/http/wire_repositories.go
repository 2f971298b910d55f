package http

import (
	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/infrastructure/repository"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo          user.Repository
	usageStatsRepo    usage.Repository
	connectionRepo    connection.Repository
	connectionLogRepo connection.LogRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db, log),
		usageStatsRepo:    repository.NewUsageStatsRepository(db, log),
		connectionRepo:    repository.NewConnectionRepository(db, log),
		connectionLogRepo: repository.NewConnectionLogRepository(db, log),
	}
}
