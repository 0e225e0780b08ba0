package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type postForm struct {
	Title         string `json:"title" form:"title" validate:"required,min=3" msg:"Title is required."`
	Content       string `json:"content" form:"content" validate:"required,min=100" msg:"Content must be at least 100 characters."`
	Excerpt       string `json:"excerpt" form:"excerpt" validate:"omitempty,max=300" msg:"Excerpt is too long."`
	FeaturedImage string `json:"featured_image" form:"featuredImage" validate:"omitempty,url" msg:"Must be a valid URL."`
	Author        string `json:"author" form:"author" validate:"required,min=2" msg:"Author name is required."`
	Tags          string `json:"tags" form:"tags"`
	CategoryIDs   []uint `json:"category_ids" form:"categoryIds"`
	Published     string `json:"published" form:"published"`
}

func (f postForm) apply(item models.BlogPost) models.BlogPost {
	item.Title = f.Title
	item.Content = f.Content
	item.Excerpt = lo.EmptyableToPtr(f.Excerpt)
	item.FeaturedImage = lo.EmptyableToPtr(f.FeaturedImage)
	item.Author = f.Author
	item.Tags = datatypes.NewJSONSlice(parseListField(f.Tags))
	return item
}

func adminCreatePost(c *fiber.Ctx) error {
	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewBlogPost(data.apply(models.BlogPost{}), data.CategoryIDs, data.Published == "on")
	if errors.Is(err, services.ErrPostExists) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	} else if errors.Is(err, services.ErrNoCategories) || errors.Is(err, services.ErrUnknownCategory) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when creating post...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to create post.")
	}

	return c.JSON(item)
}

func adminUpdatePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err = services.EditBlogPost(data.apply(item), data.CategoryIDs, data.Published == "on")
	if errors.Is(err, services.ErrNoCategories) || errors.Is(err, services.ErrUnknownCategory) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when updating post...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to update post.")
	}

	return c.JSON(item)
}

func adminDeletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	if err := services.DeleteBlogPost(uint(id)); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting post...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to delete post.")
	}

	return c.SendStatus(fiber.StatusOK)
}
