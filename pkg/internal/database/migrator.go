package database

import (
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Category{},
	&models.BlogCategory{},
	&models.Talent{},
	&models.BlogPost{},
	&models.Inquiry{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Image{},
			&models.Reel{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
