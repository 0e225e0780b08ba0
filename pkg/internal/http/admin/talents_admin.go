package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type talentForm struct {
	Name         string `json:"name" form:"name" validate:"required,min=2" msg:"Name is required."`
	Bio          string `json:"bio" form:"bio" validate:"required,min=10" msg:"Bio must be at least 10 characters."`
	ProfileImage string `json:"profile_image" form:"profileImage" validate:"required,url" msg:"Must be a valid URL."`
	Skills       string `json:"skills" form:"skills"`
	CategoryIDs  []uint `json:"category_ids" form:"categoryIds"`
	Age          string `json:"age" form:"age"`
	Height       string `json:"height" form:"height"`
	Location     string `json:"location" form:"location"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Featured     string `json:"featured" form:"featured"`
	Published    string `json:"published" form:"published"`
}

// parseListField splits a comma-separated form value, dropping blanks.
func parseListField(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

// parseOptionalAge ignores values that are not plain integers rather than
// failing the whole form over an optional field.
func parseOptionalAge(raw string) *int {
	if val, err := strconv.Atoi(raw); err == nil {
		return &val
	}
	return nil
}

func (f talentForm) apply(item models.Talent) models.Talent {
	item.Name = f.Name
	item.Bio = f.Bio
	item.ProfileImage = f.ProfileImage
	item.Skills = datatypes.NewJSONSlice(parseListField(f.Skills))
	item.Age = parseOptionalAge(f.Age)
	item.Height = lo.EmptyableToPtr(f.Height)
	item.Location = lo.EmptyableToPtr(f.Location)
	item.Email = lo.EmptyableToPtr(f.Email)
	item.Phone = lo.EmptyableToPtr(f.Phone)
	item.Featured = f.Featured == "on"
	item.Published = f.Published == "on"
	return item
}

func adminCreateTalent(c *fiber.Ctx) error {
	var data talentForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewTalent(data.apply(models.Talent{}), data.CategoryIDs)
	if errors.Is(err, services.ErrTalentExists) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	} else if errors.Is(err, services.ErrNoCategories) || errors.Is(err, services.ErrUnknownCategory) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when creating talent...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to create talent.")
	}

	return c.JSON(item)
}

func adminUpdateTalent(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	var data talentForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetTalent(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err = services.EditTalent(data.apply(item), data.CategoryIDs)
	if errors.Is(err, services.ErrNoCategories) || errors.Is(err, services.ErrUnknownCategory) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("An error occurred when updating talent...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to update talent.")
	}

	return c.JSON(item)
}

func adminDeleteTalent(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	if err := services.DeleteTalent(uint(id)); err != nil {
		log.Error().Err(err).Msg("An error occurred when deleting talent...")
		return fiber.NewError(fiber.StatusInternalServerError, "Database Error: Failed to delete talent.")
	}

	return c.SendStatus(fiber.StatusOK)
}
