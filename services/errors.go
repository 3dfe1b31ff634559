package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound      = errors.New("note not found")
	ErrVoiceNoteNotFound = errors.New("voice note not found")

	// Voice note creation: the audio blob is already claimed by a record
	ErrAudioFileInUse = errors.New("audio file already attached to a voice note")

	// Voice note deletion: the record is gone but the blob removal failed.
	// Partial failure, not a full operation failure.
	ErrBlobDeletionFailed = errors.New("audio file could not be deleted")

	// Folder errors
	ErrFolderNotFound = errors.New("folder not found")
)
