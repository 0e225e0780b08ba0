package api

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) *gorm.DB {
	tx = services.FilterPostPublished(tx)

	if len(c.Query("category")) > 0 {
		tx = services.FilterPostWithCategory(tx, c.Query("category"))
	}
	if len(c.Query("probe")) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, c.Query("probe"))
	}

	return tx
}

func hasPostFilters(c *fiber.Ctx) bool {
	return len(c.Query("category")) > 0 || len(c.Query("probe")) > 0
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := universalPostFilter(c, database.C)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var items []models.BlogPost
	if hasPostFilters(c) {
		items, err = services.ListPost(tx, take, offset, "published_at DESC")
	} else {
		items, err = services.ListPostWithCache(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	item, err := services.GetPostWithCache(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	services.IncrementPostViews(item.ID)

	return c.JSON(item)
}
