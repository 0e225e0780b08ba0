package admin

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type attachmentForm struct {
	URL      string `json:"url" form:"url" validate:"required,url" msg:"Please provide a valid media URL."`
	PublicID string `json:"public_id" form:"publicId" validate:"required" msg:"Media public ID is required."`
	Title    string `json:"title" form:"title"`
	Order    int    `json:"order" form:"order"`
}

func adminAttachImage(c *fiber.Ctx) error {
	talentID, _ := c.ParamsInt("id", 0)

	var data attachmentForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.AddTalentImage(uint(talentID), data.URL, data.PublicID, data.Order)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when attaching image...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to add image.")
	}

	return c.JSON(item)
}

func adminDetachImage(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("imageId", 0)

	outcome, err := services.RemoveTalentImage(uint(id))
	switch outcome {
	case services.DetachNone:
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		log.Error().Err(err).Msg("An error occurred when detaching image...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to remove image.")
	case services.DetachRowOnly:
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Image removed, but the media store failed to delete the file: %v", err))
	default:
		return c.SendStatus(fiber.StatusOK)
	}
}

func adminAttachReel(c *fiber.Ctx) error {
	talentID, _ := c.ParamsInt("id", 0)

	var data attachmentForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.AddTalentReel(uint(talentID), data.URL, data.PublicID, data.Title, data.Order)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when attaching reel...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to add reel.")
	}

	return c.JSON(item)
}

func adminDetachReel(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("reelId", 0)

	outcome, err := services.RemoveTalentReel(uint(id))
	switch outcome {
	case services.DetachNone:
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		log.Error().Err(err).Msg("An error occurred when detaching reel...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to remove reel.")
	case services.DetachRowOnly:
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Reel removed, but the media store failed to delete the file: %v", err))
	default:
		return c.SendStatus(fiber.StatusOK)
	}
}
