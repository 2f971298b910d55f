package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/shared/config"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)
	s := NewGooseStrategy(config.DriverSQLite, logger.NewNopLogger())

	require.NoError(t, s.Migrate(ctx, db))

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"users", "usage_stats", "connections", "connection_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	statuses, err := s.Status(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	assert.True(t, statuses[0].Applied)

	// idempotent
	require.NoError(t, s.Migrate(ctx, db))

	require.NoError(t, s.MigrateDown(ctx, db, 5))
	assert.False(t, db.Migrator().HasTable("users"))
}

func TestGooseStrategy_UnknownDialect(t *testing.T) {
	s := NewGooseStrategy("oracle", logger.NewNopLogger())

	err := s.Migrate(context.Background(), openMemoryDB(t))
	assert.Error(t, err)
}
