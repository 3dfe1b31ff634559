package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quick-notes/app"
)

// GetRecentFeed returns the merged plain+voice feed, newest first. This is
// what the home screen renders.
func GetRecentFeed(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := a.Feed.Recent()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to build feed", err)
		}

		return success(c, fiber.Map{"items": items})
	}
}
