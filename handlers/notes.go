package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quick-notes/app"
	"quick-notes/models"
	"quick-notes/services"
)

// GetPlainNotes lists plain notes, optionally filtered by exact category
func GetPlainNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")

		notes, err := a.Notes.List(category)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetPlainNote retrieves a single plain note by id
func GetPlainNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.Notes.Get(c.Params("id"))
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, "Note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreatePlainNote creates a new plain note
func CreatePlainNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePlainNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Create(req.Title, req.Content, req.Category)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save note", err)
		}

		// Remember the category for future suggestions; best effort only
		if req.Category != "" {
			if err := a.Categories.Remember(req.Category); err != nil {
				a.Logger.Warn("failed to remember category", "category", req.Category, "error", err)
			}
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdatePlainNote applies a partial update to a plain note
func UpdatePlainNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePlainNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Update(c.Params("id"), req.Title, req.Content, req.Category)
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, "Note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeletePlainNote deletes a plain note by id
func DeletePlainNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := a.Notes.Delete(c.Params("id"))
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, "Note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
