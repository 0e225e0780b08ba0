package api

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func universalTalentFilter(c *fiber.Ctx, tx *gorm.DB) *gorm.DB {
	tx = services.FilterTalentPublished(tx)

	if c.QueryBool("featured", false) {
		tx = services.FilterTalentFeatured(tx)
	}
	if len(c.Query("category")) > 0 {
		tx = services.FilterTalentWithCategory(tx, c.Query("category"))
	}
	if len(c.Query("probe")) > 0 {
		tx = services.FilterTalentWithFuzzySearch(tx, c.Query("probe"))
	}

	return tx
}

func hasTalentFilters(c *fiber.Ctx) bool {
	return c.QueryBool("featured", false) ||
		len(c.Query("category")) > 0 ||
		len(c.Query("probe")) > 0
}

func listTalent(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := universalTalentFilter(c, database.C)

	count, err := services.CountTalent(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var items []models.Talent
	if hasTalentFilters(c) {
		items, err = services.ListTalent(tx, take, offset, "name ASC")
	} else {
		items, err = services.ListTalentWithCache(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getTalent(c *fiber.Ctx) error {
	slug := c.Params("slug")

	item, err := services.GetTalentWithCache(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	services.IncrementTalentViews(item.ID)

	return c.JSON(item)
}
