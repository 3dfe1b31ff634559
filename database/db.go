package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrStorageUnavailable wraps every storage-engine I/O failure so callers can
// tell an engine fault (disk full, corruption) apart from a missing record.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrDuplicateAudioFile reports a voice note insert that lost the race for a
// blob ref: the UNIQUE constraint fired because another record already claims
// the audio file. This is a conflict, not an engine fault.
var ErrDuplicateAudioFile = errors.New("audio file already claimed by a voice note")

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Plain notes table
		`CREATE TABLE IF NOT EXISTS plain_notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			last_modified DATETIME NOT NULL
		)`,

		// Voice notes table. The UNIQUE constraint keeps the blob ownership
		// invariant: at most one record may claim a given audio file.
		`CREATE TABLE IF NOT EXISTS voice_notes (
			id TEXT PRIMARY KEY,
			audio_file TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			waveform TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL
		)`,

		// Folders table. Name is deliberately not unique; duplicate handling
		// is a caller concern (see FolderService.ResolveOrCreate).
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,

		// Flat key-value storage, holds the custom category suggestion list
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_plain_notes_category ON plain_notes(category)`,
		`CREATE INDEX IF NOT EXISTS idx_plain_notes_modified ON plain_notes(last_modified)`,
		`CREATE INDEX IF NOT EXISTS idx_voice_notes_created ON voice_notes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_folders_name ON folders(name)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
