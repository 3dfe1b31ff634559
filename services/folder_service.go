package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quick-notes/events"
	"quick-notes/models"
)

// FolderService handles business logic for folders, including the first-run
// bootstrap of the default set.
type FolderService struct {
	repo FolderRepository
	bus  Publisher
}

// NewFolderService creates a new folder service
func NewFolderService(repo FolderRepository, bus Publisher) *FolderService {
	return &FolderService{repo: repo, bus: bus}
}

// Create inserts a folder without checking name uniqueness; storage is
// permissive about duplicates. Callers wanting one-folder-per-name go
// through ResolveOrCreate.
func (fs *FolderService) Create(name string) (*models.Folder, error) {
	folder := &models.Folder{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := fs.repo.CreateFolder(folder); err != nil {
		return nil, err
	}

	fs.publish()
	return folder, nil
}

// ResolveOrCreate returns the existing folder with an exact name match, or
// creates one when none exists. This is the only path that deduplicates;
// note category fields are still free to reference names with no folder.
func (fs *FolderService) ResolveOrCreate(name string) (*models.Folder, error) {
	folder, err := fs.repo.GetFolderByName(name)
	if err != nil {
		return nil, err
	}
	if folder != nil {
		return folder, nil
	}
	return fs.Create(name)
}

// Resolve returns the folder with an exact name match, or ErrFolderNotFound.
func (fs *FolderService) Resolve(name string) (*models.Folder, error) {
	folder, err := fs.repo.GetFolderByName(name)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	return folder, nil
}

// Delete removes every folder with the given name, duplicates at once.
// Notes referencing the name are orphaned, not deleted or reassigned, and
// stay retrievable by category. Deleting a name with no folder is a silent
// no-op.
func (fs *FolderService) Delete(name string) error {
	if err := fs.repo.DeleteFoldersByName(name); err != nil {
		return err
	}

	fs.publish()
	return nil
}

// List returns all folders, oldest first.
func (fs *FolderService) List() ([]models.Folder, error) {
	return fs.repo.GetFolders()
}

// EnsureDefaults seeds the default folders on an empty store. The check is
// count-based: any existing folder record suppresses seeding. Failures are
// logged and swallowed so a broken bootstrap degrades to an uninitialized
// folder list instead of taking the process down.
func (fs *FolderService) EnsureDefaults() {
	count, err := fs.repo.CountFolders()
	if err != nil {
		slog.Warn("default folder bootstrap skipped", "error", err)
		return
	}
	if count > 0 {
		return
	}

	created := false
	for _, name := range models.DefaultFolderNames {
		folder := &models.Folder{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now(),
		}
		if err := fs.repo.CreateFolder(folder); err != nil {
			slog.Warn("failed to create default folder", "name", name, "error", err)
			continue
		}
		created = true
	}

	if created {
		fs.publish()
	}
}

func (fs *FolderService) publish() {
	if fs.bus != nil {
		fs.bus.Publish(events.FoldersChanged)
	}
}
