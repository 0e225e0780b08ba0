package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type categoryForm struct {
	Name string `json:"name" form:"name" validate:"required,min=2" msg:"Category name must be at least 2 characters."`
}

func adminCreateCategory(c *fiber.Ctx) error {
	var data categoryForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewCategory(data.Name)
	if errors.Is(err, services.ErrCategoryExists) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when creating category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category due to a server error.")
	}

	return c.JSON(item)
}

func adminUpdateCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	var data categoryForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err = services.EditCategory(item, data.Name)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when updating category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category due to a server error.")
	}

	return c.JSON(item)
}

func adminDeleteCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	if err := services.DeleteCategory(uint(id)); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category due to a server error.")
	}

	return c.SendStatus(fiber.StatusOK)
}

func adminCreateBlogCategory(c *fiber.Ctx) error {
	var data categoryForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewBlogCategory(data.Name)
	if errors.Is(err, services.ErrBlogCategoryExists) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when creating blog category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create blog category due to a server error.")
	}

	return c.JSON(item)
}

func adminUpdateBlogCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	var data categoryForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetBlogCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err = services.EditBlogCategory(item, data.Name)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when updating blog category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update blog category due to a server error.")
	}

	return c.JSON(item)
}

func adminDeleteBlogCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	if err := services.DeleteBlogCategory(uint(id)); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting blog category...")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete blog category due to a server error.")
	}

	return c.SendStatus(fiber.StatusOK)
}
