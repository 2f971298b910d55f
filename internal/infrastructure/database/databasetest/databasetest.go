// Package databasetest provides a migrated in-memory SQLite database for tests.
package databasetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vpndash/vpndash/internal/infrastructure/migration"
	"github.com/vpndash/vpndash/internal/shared/config"
	applogger "github.com/vpndash/vpndash/internal/shared/logger"
)

// NewSQLite opens a private in-memory database with the production schema.
// A single connection keeps the memory database alive and shared.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	strategy := migration.NewGooseStrategy(config.DriverSQLite, applogger.NewNopLogger())
	require.NoError(t, strategy.Migrate(context.Background(), db))

	return db
}
