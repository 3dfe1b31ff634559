package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quick-notes/database"
	"quick-notes/events"
	"quick-notes/models"
)

// VoiceService handles business logic for voice notes, including the
// lifecycle of the audio blob each record references.
type VoiceService struct {
	repo  VoiceNoteRepository
	blobs BlobStore
	bus   Publisher
}

// NewVoiceService creates a new voice note service
func NewVoiceService(repo VoiceNoteRepository, blobs BlobStore, bus Publisher) *VoiceService {
	return &VoiceService{repo: repo, blobs: blobs, bus: bus}
}

// Create inserts a new voice note record for an already-recorded blob. The
// waveform levels are stored verbatim. A blob already claimed by another
// record is rejected with ErrAudioFileInUse.
func (vs *VoiceService) Create(audioFile, duration string, waveform []float32, category, description string) (*models.VoiceNote, error) {
	existing, err := vs.repo.GetVoiceNoteByAudioFile(audioFile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAudioFileInUse
	}

	note := &models.VoiceNote{
		ID:          uuid.New().String(),
		AudioFile:   audioFile,
		Category:    category,
		Description: description,
		Duration:    duration,
		Waveform:    waveform,
		CreatedAt:   time.Now(),
	}

	// The precheck can lose a race; the UNIQUE constraint is the backstop
	if err := vs.repo.InsertVoiceNote(note); err != nil {
		if errors.Is(err, database.ErrDuplicateAudioFile) {
			return nil, ErrAudioFileInUse
		}
		return nil, err
	}

	vs.publish()
	return note, nil
}

// Update mutates metadata only. Re-recording audio is handled upstream by
// deleting and recreating the note. Nil fields are left unchanged; the patch
// is applied in one statement so concurrent partial updates cannot clobber
// each other. Returns ErrVoiceNoteNotFound on miss.
func (vs *VoiceService) Update(id string, category, description *string) (*models.VoiceNote, error) {
	updated, err := vs.repo.UpdateVoiceNote(id, category, description)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrVoiceNoteNotFound
	}

	note, err := vs.repo.GetVoiceNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrVoiceNoteNotFound
	}

	vs.publish()
	return note, nil
}

// Delete removes the record and its audio blob. The record always goes
// first: a blob that cannot be removed is reported as ErrBlobDeletionFailed
// but never resurrects the record, since a ghost record the UI still shows
// is worse than an orphaned file. A second delete fails with
// ErrVoiceNoteNotFound.
func (vs *VoiceService) Delete(id string) error {
	note, err := vs.repo.GetVoiceNote(id)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrVoiceNoteNotFound
	}

	deleted, err := vs.repo.DeleteVoiceNote(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVoiceNoteNotFound
	}

	vs.publish()

	if err := vs.blobs.Remove(note.AudioFile); err != nil {
		slog.Warn("voice note deleted but blob removal failed",
			"id", id, "audio_file", note.AudioFile, "error", err)
		return fmt.Errorf("%w: %v", ErrBlobDeletionFailed, err)
	}

	return nil
}

// Get retrieves a single voice note by id.
func (vs *VoiceService) Get(id string) (*models.VoiceNote, error) {
	note, err := vs.repo.GetVoiceNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrVoiceNoteNotFound
	}
	return note, nil
}

// List returns all voice notes newest first.
func (vs *VoiceService) List() ([]models.VoiceNote, error) {
	return vs.repo.GetVoiceNotes()
}

func (vs *VoiceService) publish() {
	if vs.bus != nil {
		vs.bus.Publish(events.NotesChanged)
	}
}
