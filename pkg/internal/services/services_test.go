package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	localCache "github.com/limelight-agency/limelight/pkg/internal/cache"
	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

// testDatabase swaps the process-wide connection for an in-memory one. The
// pool is pinned to a single connection so the in-memory store survives and
// concurrent writers serialize instead of racing.
func testDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.BlogCategory{},
		&models.Talent{},
		&models.BlogPost{},
		&models.Inquiry{},
		&models.Image{},
		&models.Reel{},
	))

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}

	previous := database.C
	database.C = db
	t.Cleanup(func() {
		database.C = previous
		sqlDB.Close()
	})

	return db
}
