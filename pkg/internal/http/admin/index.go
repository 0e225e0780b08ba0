package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Use(authMiddleware)
	{
		admin.Post("/categories", adminCreateCategory)
		admin.Put("/categories/:id", adminUpdateCategory)
		admin.Delete("/categories/:id", adminDeleteCategory)

		admin.Post("/blog/categories", adminCreateBlogCategory)
		admin.Put("/blog/categories/:id", adminUpdateBlogCategory)
		admin.Delete("/blog/categories/:id", adminDeleteBlogCategory)

		talents := admin.Group("/talents")
		{
			talents.Post("/", adminCreateTalent)
			talents.Put("/:id", adminUpdateTalent)
			talents.Delete("/:id", adminDeleteTalent)

			talents.Post("/:id/images", adminAttachImage)
			talents.Delete("/:id/images/:imageId", adminDetachImage)
			talents.Post("/:id/reels", adminAttachReel)
			talents.Delete("/:id/reels/:reelId", adminDetachReel)
		}

		posts := admin.Group("/posts")
		{
			posts.Post("/", adminCreatePost)
			posts.Put("/:id", adminUpdatePost)
			posts.Delete("/:id", adminDeletePost)
		}

		inquiries := admin.Group("/inquiries")
		{
			inquiries.Get("/", adminListInquiry)
			inquiries.Patch("/:id/status", adminUpdateInquiryStatus)
			inquiries.Delete("/:id", adminDeleteInquiry)
		}

		admin.Post("/upload", adminUploadMedia)
	}
}

func authMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		c.Locals("operator", claims["sub"])
	}

	return c.Next()
}
