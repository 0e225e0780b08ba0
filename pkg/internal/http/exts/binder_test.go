package exts_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limelight-agency/limelight/pkg/internal/http/exts"
)

type sampleForm struct {
	Name string `form:"name" validate:"required,min=2" msg:"Name must be at least 2 characters."`
	Bio  string `form:"bio" validate:"required,min=10" msg:"Bio must be at least 10 characters."`
}

func postForm(t *testing.T, app *fiber.App, values url.Values) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestBindAndValidateFirstErrorWins(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var data sampleForm
		if err := exts.BindAndValidate(c, &data); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	// Both fields invalid: the name message wins since it is declared first.
	status, body := postForm(t, app, url.Values{"name": {"A"}, "bio": {"short"}})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Name must be at least 2 characters.", body)

	// Only the bio invalid: its own message surfaces.
	status, body = postForm(t, app, url.Values{"name": {"Sarah Johnson"}, "bio": {"short"}})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Bio must be at least 10 characters.", body)

	status, _ = postForm(t, app, url.Values{"name": {"Sarah Johnson"}, "bio": {"An experienced runway model."}})
	assert.Equal(t, fiber.StatusOK, status)
}
