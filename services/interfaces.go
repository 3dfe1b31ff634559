package services

import (
	"time"

	"quick-notes/events"
	"quick-notes/models"
)

// PlainNoteRepository defines the interface for plain note data access.
// Updates are partial: nil fields keep their stored value.
type PlainNoteRepository interface {
	GetPlainNote(id string) (*models.PlainNote, error)
	InsertPlainNote(note *models.PlainNote) error
	UpdatePlainNote(id string, title, content, category *string, lastModified time.Time) (bool, error)
	DeletePlainNote(id string) (bool, error)
	GetPlainNotes(category string) ([]models.PlainNote, error)
}

// VoiceNoteRepository defines the interface for voice note data access.
// Updates are partial: nil fields keep their stored value.
type VoiceNoteRepository interface {
	GetVoiceNote(id string) (*models.VoiceNote, error)
	GetVoiceNoteByAudioFile(audioFile string) (*models.VoiceNote, error)
	InsertVoiceNote(note *models.VoiceNote) error
	UpdateVoiceNote(id string, category, description *string) (bool, error)
	DeleteVoiceNote(id string) (bool, error)
	GetVoiceNotes() ([]models.VoiceNote, error)
}

// FolderRepository defines the interface for folder data access
type FolderRepository interface {
	GetFolders() ([]models.Folder, error)
	GetFolderByName(name string) (*models.Folder, error)
	CountFolders() (int, error)
	CreateFolder(folder *models.Folder) error
	DeleteFoldersByName(name string) error
}

// CategoryRepository defines the interface for the suggestion list storage
type CategoryRepository interface {
	GetCustomCategories() ([]string, error)
	SaveCustomCategory(name string) error
}

// BlobStore abstracts the audio blob directory for testability
type BlobStore interface {
	Remove(ref string) error
}

// Publisher is the mutation-notification side of the event bus
type Publisher interface {
	Publish(kind events.Kind)
}
