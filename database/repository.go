package database

import (
	"fmt"
	"sync"
)

// Repository is the single data-access point for all entities. Mutations
// serialize through mu so at most one write is in flight per store; reads go
// straight to SQLite (WAL handles reader/writer coexistence).
type Repository struct {
	db *DB
	mu sync.Mutex
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// storageErr tags engine failures with ErrStorageUnavailable. Nil passes
// through so call sites can wrap unconditionally.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
