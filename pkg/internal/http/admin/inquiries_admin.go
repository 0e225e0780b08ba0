package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func adminListInquiry(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := database.C
	if status := c.Query("status"); len(status) > 0 {
		tx = tx.Where("status = ?", status)
	}

	count, err := services.CountInquiry(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListInquiry(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func adminUpdateInquiryStatus(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	var data struct {
		Status string `json:"status" form:"status" validate:"required" msg:"Inquiry status is required."`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditInquiryStatus(uint(id), data.Status)
	if errors.Is(err, services.ErrInvalidInquiryStatus) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

func adminDeleteInquiry(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	if err := services.DeleteInquiry(uint(id)); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting inquiry...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to delete inquiry.")
	}

	return c.SendStatus(fiber.StatusOK)
}
