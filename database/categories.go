package database

import (
	"database/sql"
	"encoding/json"
)

// ==================== CATEGORY SUGGESTIONS ====================

// The suggestion list is a single ordered JSON array under one settings key.
// It feeds UI autocomplete only and has no relationship with folders or
// notes.

const customCategoriesKey = "custom_categories"

// GetCustomCategories returns the persisted suggestion list in insertion
// order. An absent key reads as an empty list.
func (r *Repository) GetCustomCategories() ([]string, error) {
	var raw string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", customCategoriesKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return []string{}, nil
	}
	if err != nil {
		return nil, storageErr("get custom categories", err)
	}

	names := make([]string, 0)
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, storageErr("get custom categories", err)
	}
	return names, nil
}

// SaveCustomCategory appends a name to the suggestion list if not already
// present. The whole list is rewritten under the single key.
func (r *Repository) SaveCustomCategory(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var raw string
	names := make([]string, 0)
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", customCategoriesKey).Scan(&raw)
	if err != nil && err != sql.ErrNoRows {
		return storageErr("save custom category", err)
	}
	if err == nil {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return storageErr("save custom category", err)
		}
	}

	for _, existing := range names {
		if existing == name {
			return nil
		}
	}
	names = append(names, name)

	data, err := json.Marshal(names)
	if err != nil {
		return storageErr("save custom category", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, customCategoriesKey, string(data))
	return storageErr("save custom category", err)
}
