package database

import (
	"database/sql"
	"time"

	"quick-notes/models"
)

// ==================== PLAIN NOTE OPERATIONS ====================

// GetPlainNote retrieves a single plain note by id. Returns (nil, nil) when
// the id does not exist.
func (r *Repository) GetPlainNote(id string) (*models.PlainNote, error) {
	var note models.PlainNote
	err := r.db.QueryRow(`
		SELECT id, title, content, category, last_modified
		FROM plain_notes
		WHERE id = ?
	`, id).Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.LastModified)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get plain note", err)
	}

	return &note, nil
}

// InsertPlainNote stores a new plain note record.
func (r *Repository) InsertPlainNote(note *models.PlainNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`
		INSERT INTO plain_notes (id, title, content, category, last_modified)
		VALUES (?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, note.Category, note.LastModified)
	return storageErr("insert plain note", err)
}

// UpdatePlainNote applies a partial update in a single statement: nil fields
// keep their stored value, so two concurrent partial updates of the same note
// cannot overwrite each other's fields. Returns false when no record matched
// the id.
func (r *Repository) UpdatePlainNote(id string, title, content, category *string, lastModified time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`
		UPDATE plain_notes SET
			title = COALESCE(?, title),
			content = COALESCE(?, content),
			category = COALESCE(?, category),
			last_modified = ?
		WHERE id = ?
	`, title, content, category, lastModified, id)
	if err != nil {
		return false, storageErr("update plain note", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("update plain note", err)
	}
	return n > 0, nil
}

// DeletePlainNote removes a record by id. Returns false when nothing was
// deleted, so a repeated delete is observable as a miss.
func (r *Repository) DeletePlainNote(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec("DELETE FROM plain_notes WHERE id = ?", id)
	if err != nil {
		return false, storageErr("delete plain note", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("delete plain note", err)
	}
	return n > 0, nil
}

// GetPlainNotes retrieves plain notes newest-modified first. An empty
// category returns everything; otherwise rows are filtered by exact match.
// Notes whose folder was since deleted still show up here unchanged.
func (r *Repository) GetPlainNotes(category string) ([]models.PlainNote, error) {
	query := `
		SELECT id, title, content, category, last_modified
		FROM plain_notes
		ORDER BY last_modified DESC
	`
	args := []any{}
	if category != "" {
		query = `
			SELECT id, title, content, category, last_modified
			FROM plain_notes
			WHERE category = ?
			ORDER BY last_modified DESC
		`
		args = append(args, category)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("list plain notes", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.PlainNote, 0)
	for rows.Next() {
		var note models.PlainNote
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.LastModified); err != nil {
			return nil, storageErr("list plain notes", err)
		}
		notes = append(notes, note)
	}

	return notes, storageErr("list plain notes", rows.Err())
}
