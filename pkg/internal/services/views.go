package services

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

// View counters are incremented in the database so concurrent hits never lose
// updates. Failures are logged and swallowed; a miscounted view must not break
// serving the page.

func IncrementTalentViews(id uint) {
	if err := database.C.Model(&models.Talent{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		log.Warn().Err(err).Uint("id", id).Msg("An error occurred when incrementing talent views...")
	}
}

func IncrementPostViews(id uint) {
	if err := database.C.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		log.Warn().Err(err).Uint("id", id).Msg("An error occurred when incrementing post views...")
	}
}
