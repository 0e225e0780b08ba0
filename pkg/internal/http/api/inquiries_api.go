package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func createInquiry(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required,min=2" msg:"Name must be at least 2 characters."`
		Email    string `json:"email" form:"email" validate:"required,email" msg:"Please enter a valid email address."`
		Message  string `json:"message" form:"message" validate:"required,min=10" msg:"Message must be at least 10 characters."`
		Company  string `json:"company" form:"company"`
		Phone    string `json:"phone" form:"phone"`
		TalentID *uint  `json:"talent_id" form:"talentId"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Inquiry{
		Name:     data.Name,
		Email:    data.Email,
		Message:  data.Message,
		Company:  lo.EmptyableToPtr(data.Company),
		Phone:    lo.EmptyableToPtr(data.Phone),
		TalentID: data.TalentID,
	}

	if _, err := services.NewInquiry(item); err != nil {
		log.Error().Err(err).Msg("An error occurred when creating inquiry...")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	return c.JSON(fiber.Map{
		"message": "Thank you for your inquiry! We'll get back to you soon.",
	})
}
