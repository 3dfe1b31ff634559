// Package audio manages the on-disk directory of audio blobs referenced by
// voice notes. The store only ever touches blobs it is handed a ref for; it
// never scans or garbage-collects the directory, which is shared with the
// recording layer.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

// NewStore ensures the blob directory exists and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a blob ref to its location on disk. Refs are plain file
// names; anything that escapes the directory is rejected.
func (s *Store) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return "", fmt.Errorf("invalid audio file ref %q", ref)
	}
	return filepath.Join(s.dir, ref), nil
}

// Save writes an uploaded recording under a fresh UUID-based ref and returns
// the ref. The extension is carried over so players can sniff the format.
func (s *Store) Save(r io.Reader, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	ref := uuid.New().String()
	if ext != "" {
		ref = ref + "." + ext
	}

	path, err := s.Path(ref)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return ref, nil
}

// Exists reports whether the blob for a ref is present.
func (s *Store) Exists(ref string) bool {
	path, err := s.Path(ref)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Remove deletes exactly the named blob. A missing file is an error so a
// double deletion is observable to the caller.
func (s *Store) Remove(ref string) error {
	path, err := s.Path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove audio file %s: %w", ref, err)
	}
	return nil
}
