package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		api.Get("/categories", listCategory)
		api.Get("/blog/categories", listBlogCategory)

		talents := api.Group("/talents")
		{
			talents.Get("/", listTalent)
			talents.Get("/:slug", getTalent)
		}

		posts := api.Group("/posts")
		{
			posts.Get("/", listPost)
			posts.Get("/:slug", getPost)
		}

		api.Post("/inquiries", createInquiry)
	}
}
