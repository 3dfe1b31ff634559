package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"quick-notes/models"
)

// ==================== VOICE NOTE OPERATIONS ====================

// Waveform levels are stored as a JSON float array in a TEXT column. JSON
// round-trips float32 values exactly, which is all the display layer needs.

func encodeWaveform(levels []float32) (string, error) {
	if levels == nil {
		levels = []float32{}
	}
	data, err := json.Marshal(levels)
	if err != nil {
		return "", fmt.Errorf("encode waveform: %w", err)
	}
	return string(data), nil
}

func decodeWaveform(raw string) ([]float32, error) {
	levels := make([]float32, 0)
	if raw == "" {
		return levels, nil
	}
	if err := json.Unmarshal([]byte(raw), &levels); err != nil {
		return nil, fmt.Errorf("decode waveform: %w", err)
	}
	return levels, nil
}

func scanVoiceNote(scan func(dest ...any) error) (*models.VoiceNote, error) {
	var note models.VoiceNote
	var waveform string
	if err := scan(&note.ID, &note.AudioFile, &note.Category, &note.Description,
		&note.Duration, &waveform, &note.CreatedAt); err != nil {
		return nil, err
	}

	levels, err := decodeWaveform(waveform)
	if err != nil {
		return nil, err
	}
	note.Waveform = levels
	return &note, nil
}

// GetVoiceNote retrieves a single voice note by id. Returns (nil, nil) when
// the id does not exist.
func (r *Repository) GetVoiceNote(id string) (*models.VoiceNote, error) {
	row := r.db.QueryRow(`
		SELECT id, audio_file, category, description, duration, waveform, created_at
		FROM voice_notes
		WHERE id = ?
	`, id)

	note, err := scanVoiceNote(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get voice note", err)
	}
	return note, nil
}

// GetVoiceNoteByAudioFile retrieves the record claiming a given blob ref, if
// any. Used to keep blob ownership exclusive before insert.
func (r *Repository) GetVoiceNoteByAudioFile(audioFile string) (*models.VoiceNote, error) {
	row := r.db.QueryRow(`
		SELECT id, audio_file, category, description, duration, waveform, created_at
		FROM voice_notes
		WHERE audio_file = ?
	`, audioFile)

	note, err := scanVoiceNote(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get voice note by audio file", err)
	}
	return note, nil
}

// InsertVoiceNote stores a new voice note record. A UNIQUE violation on
// audio_file surfaces as ErrDuplicateAudioFile rather than a storage fault.
func (r *Repository) InsertVoiceNote(note *models.VoiceNote) error {
	waveform, err := encodeWaveform(note.Waveform)
	if err != nil {
		return storageErr("insert voice note", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.Exec(`
		INSERT INTO voice_notes (id, audio_file, category, description, duration, waveform, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, note.ID, note.AudioFile, note.Category, note.Description, note.Duration, waveform, note.CreatedAt)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateAudioFile
	}
	return storageErr("insert voice note", err)
}

// UpdateVoiceNote patches the metadata fields of an existing record in one
// statement; nil fields keep their stored value. Audio file, waveform and
// creation time are immutable after creation. Returns false when no record
// matched the id.
func (r *Repository) UpdateVoiceNote(id string, category, description *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`
		UPDATE voice_notes SET
			category = COALESCE(?, category),
			description = COALESCE(?, description)
		WHERE id = ?
	`, category, description, id)
	if err != nil {
		return false, storageErr("update voice note", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("update voice note", err)
	}
	return n > 0, nil
}

// DeleteVoiceNote removes a record by id. Returns false when nothing was
// deleted. Blob removal is the service's responsibility.
func (r *Repository) DeleteVoiceNote(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec("DELETE FROM voice_notes WHERE id = ?", id)
	if err != nil {
		return false, storageErr("delete voice note", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("delete voice note", err)
	}
	return n > 0, nil
}

// GetVoiceNotes retrieves all voice notes newest first.
func (r *Repository) GetVoiceNotes() ([]models.VoiceNote, error) {
	rows, err := r.db.Query(`
		SELECT id, audio_file, category, description, duration, waveform, created_at
		FROM voice_notes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, storageErr("list voice notes", err)
	}
	defer rows.Close()

	notes := make([]models.VoiceNote, 0)
	for rows.Next() {
		note, err := scanVoiceNote(rows.Scan)
		if err != nil {
			return nil, storageErr("list voice notes", err)
		}
		notes = append(notes, *note)
	}

	return notes, storageErr("list voice notes", rows.Err())
}
