package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quick-notes/app"
	"quick-notes/models"
)

// GetCategorySuggestions returns the remembered custom category names
func GetCategorySuggestions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := a.Categories.Suggestions()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch category suggestions", err)
		}

		return success(c, fiber.Map{"categories": names})
	}
}

// RememberCategory adds a name to the suggestion list
func RememberCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RememberCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Categories.Remember(req.Name); err != nil {
			return serverErrorWithDetails(c, "Failed to save category", err)
		}

		return created(c, fiber.Map{"saved": true})
	}
}
