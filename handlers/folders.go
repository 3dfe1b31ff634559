package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quick-notes/app"
	"quick-notes/models"
)

// GetFolders lists all folders, oldest first
func GetFolders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := a.Folders.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch folders", err)
		}

		return success(c, fiber.Map{"folders": folders})
	}
}

// CreateFolder resolves a folder by name, creating it when absent. The API
// goes through the resolver so user-facing folder names stay unique even
// though storage itself is permissive about duplicates.
func CreateFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		folder, err := a.Folders.ResolveOrCreate(req.Name)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create folder", err)
		}

		return created(c, fiber.Map{"folder": folder})
	}
}

// DeleteFolder removes every folder matching a name. Notes keep their
// category label and become orphaned. A miss is a silent success.
func DeleteFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if name == "" {
			return badRequest(c, "name is required")
		}

		if err := a.Folders.Delete(name); err != nil {
			return serverErrorWithDetails(c, "Failed to delete folder", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
