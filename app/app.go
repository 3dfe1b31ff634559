package app

import (
	"log/slog"

	"quick-notes/events"
	"quick-notes/pkg/audio"
	"quick-notes/services"
	"quick-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes      *services.NoteService
	Voice      *services.VoiceService
	Folders    *services.FolderService
	Categories *services.CategoryService
	Feed       *services.FeedService
	Audio      *audio.Store
	Bus        *events.Bus
	Validator  *validator.Validator
	Logger     *slog.Logger
}

// New creates a new App instance with all dependencies
func New(notes *services.NoteService, voice *services.VoiceService, folders *services.FolderService,
	categories *services.CategoryService, feed *services.FeedService,
	audioStore *audio.Store, bus *events.Bus, logger *slog.Logger) *App {
	return &App{
		Notes:      notes,
		Voice:      voice,
		Folders:    folders,
		Categories: categories,
		Feed:       feed,
		Audio:      audioStore,
		Bus:        bus,
		Validator:  validator.New(),
		Logger:     logger,
	}
}
