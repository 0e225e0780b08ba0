package admin

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/limelight-agency/limelight/pkg/internal/mediastore"
)

func adminUploadMedia(c *fiber.Ctx) error {
	if mediastore.S == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "media store is not configured")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "a file is required")
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	contentType := header.Header.Get(fiber.HeaderContentType)
	prefix := "images"
	if strings.HasPrefix(contentType, "video/") {
		prefix = "reels"
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(header.Filename))

	url, err := mediastore.S.Upload(c.Context(), key, data, contentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("An error occurred when uploading media...")
		return fiber.NewError(fiber.StatusBadGateway, "Failed to upload media to the store.")
	}

	return c.JSON(fiber.Map{
		"url":       url,
		"public_id": key,
	})
}
