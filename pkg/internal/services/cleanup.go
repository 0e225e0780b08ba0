package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/limelight-agency/limelight/pkg/internal/database"
)

// DoAutoDatabaseCleanup hard-deletes rows that were soft-deleted more than
// thirty days ago, freeing their unique slugs for reuse.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-30 * 24 * time.Hour)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto maintenance...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
