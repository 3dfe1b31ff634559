package services

import (
	"time"

	"github.com/google/uuid"

	"quick-notes/events"
	"quick-notes/models"
)

// NoteService handles business logic for plain notes
type NoteService struct {
	repo PlainNoteRepository
	bus  Publisher
}

// NewNoteService creates a new plain note service
func NewNoteService(repo PlainNoteRepository, bus Publisher) *NoteService {
	return &NoteService{repo: repo, bus: bus}
}

// Create inserts a new plain note. Empty title or content is accepted as-is;
// any defaulting is a presentation concern. The category may name a folder
// that does not exist.
func (ns *NoteService) Create(title, content, category string) (*models.PlainNote, error) {
	note := &models.PlainNote{
		ID:           uuid.New().String(),
		Title:        title,
		Content:      content,
		Category:     category,
		LastModified: time.Now(),
	}

	if err := ns.repo.InsertPlainNote(note); err != nil {
		return nil, err
	}

	ns.publish()
	return note, nil
}

// Update applies a partial update. Nil fields are left unchanged and the
// patch is applied in one statement, so concurrent partial updates of the
// same note cannot clobber each other's fields. LastModified is refreshed on
// any update. Returns ErrNoteNotFound when the id does not exist.
func (ns *NoteService) Update(id string, title, content, category *string) (*models.PlainNote, error) {
	updated, err := ns.repo.UpdatePlainNote(id, title, content, category, time.Now())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNoteNotFound
	}

	note, err := ns.repo.GetPlainNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	ns.publish()
	return note, nil
}

// Delete removes a plain note. A second delete of the same id fails with
// ErrNoteNotFound; deletion is intentionally not idempotent.
func (ns *NoteService) Delete(id string) error {
	deleted, err := ns.repo.DeletePlainNote(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}

	ns.publish()
	return nil
}

// Get retrieves a single plain note by id.
func (ns *NoteService) Get(id string) (*models.PlainNote, error) {
	note, err := ns.repo.GetPlainNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// List returns plain notes newest-modified first, optionally filtered by
// exact category match. Orphaned notes (folder since deleted) are included.
func (ns *NoteService) List(category string) ([]models.PlainNote, error) {
	return ns.repo.GetPlainNotes(category)
}

func (ns *NoteService) publish() {
	if ns.bus != nil {
		ns.bus.Publish(events.NotesChanged)
	}
}
