package database

import (
	"database/sql"

	"quick-notes/models"
)

// ==================== FOLDER OPERATIONS ====================

// GetFolders retrieves all folders, oldest first.
func (r *Repository) GetFolders() ([]models.Folder, error) {
	rows, err := r.db.Query(`
		SELECT id, name, created_at
		FROM folders
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, storageErr("list folders", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	folders := make([]models.Folder, 0)
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.CreatedAt); err != nil {
			return nil, storageErr("list folders", err)
		}
		folders = append(folders, folder)
	}

	return folders, storageErr("list folders", rows.Err())
}

// GetFolderByName retrieves the oldest folder with an exact name match.
// Returns (nil, nil) when no folder has that name.
func (r *Repository) GetFolderByName(name string) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.QueryRow(`
		SELECT id, name, created_at
		FROM folders
		WHERE name = ?
		ORDER BY created_at ASC
		LIMIT 1
	`, name).Scan(&folder.ID, &folder.Name, &folder.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get folder by name", err)
	}

	return &folder, nil
}

// CountFolders returns the number of folder records. The bootstrap uses this
// count, not the default names, to decide whether to seed.
func (r *Repository) CountFolders() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM folders").Scan(&count); err != nil {
		return 0, storageErr("count folders", err)
	}
	return count, nil
}

// CreateFolder stores a new folder record. Name uniqueness is not enforced
// here; callers wanting it must check first.
func (r *Repository) CreateFolder(folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`
		INSERT INTO folders (id, name, created_at)
		VALUES (?, ?, ?)
	`, folder.ID, folder.Name, folder.CreatedAt)
	return storageErr("create folder", err)
}

// DeleteFoldersByName removes every folder with an exact name match,
// duplicates included. Notes referencing the name are left untouched.
// Succeeds silently when nothing matches.
func (r *Repository) DeleteFoldersByName(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec("DELETE FROM folders WHERE name = ?", name)
	return storageErr("delete folders by name", err)
}
