package handlers

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"quick-notes/app"
	"quick-notes/models"
	"quick-notes/services"
)

// GetVoiceNotes lists all voice notes newest first
func GetVoiceNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Voice.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch voice notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// UploadAudio accepts a finished recording and stores it in the blob
// directory, returning the ref a subsequent create call should reference.
func UploadAudio(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("audio")
		if err != nil {
			return badRequest(c, "No audio file provided")
		}

		src, err := file.Open()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read audio file", err)
		}
		defer src.Close()

		ref, err := a.Audio.Save(src, filepath.Ext(file.Filename))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to store audio file", err)
		}

		a.Logger.Info("audio blob stored", "ref", ref, "size", file.Size)
		return created(c, fiber.Map{"audio_file": ref})
	}
}

// CreateVoiceNote creates a voice note record for an uploaded blob
func CreateVoiceNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateVoiceNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Voice.Create(req.AudioFile, req.Duration, req.Waveform, req.Category, req.Description)
		if errors.Is(err, services.ErrAudioFileInUse) {
			return conflict(c, "Audio file is already attached to another voice note")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save voice note", err)
		}

		if req.Category != "" {
			if err := a.Categories.Remember(req.Category); err != nil {
				a.Logger.Warn("failed to remember category", "category", req.Category, "error", err)
			}
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateVoiceNote updates voice note metadata (category, description)
func UpdateVoiceNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateVoiceNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Voice.Update(c.Params("id"), req.Category, req.Description)
		if errors.Is(err, services.ErrVoiceNoteNotFound) {
			return notFound(c, "Voice note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update voice note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteVoiceNote deletes the record and its audio blob. A blob that could
// not be removed is reported as a warning on an otherwise successful
// response, since the record is already gone.
func DeleteVoiceNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := a.Voice.Delete(c.Params("id"))
		if errors.Is(err, services.ErrVoiceNoteNotFound) {
			return notFound(c, "Voice note not found")
		}
		if errors.Is(err, services.ErrBlobDeletionFailed) {
			return success(c, fiber.Map{"deleted": true, "warning": "audio file could not be deleted"})
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete voice note", err)
		}

		return success(c, fiber.Map{"deleted": true})
	}
}
