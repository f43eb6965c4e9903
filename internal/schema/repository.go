package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"sbe-schema-generator/internal/logging"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Repository loads and commits whole schema documents. The Store calls Load
// once when opened and Commit after every change, or once per Batch.
type Repository interface {
	// Load returns the persisted document, or an error wrapping
	// ErrSchemaNotFound when there is none.
	Load() (Document, error)
	// Commit replaces the persisted document.
	Commit(doc Document) error
	// Location describes where the document lives, for messages.
	Location() string
}

// FileRepository keeps the document in a single JSON file and overwrites it
// on every commit. Concurrent writers are not coordinated: the last commit
// wins.
type FileRepository struct {
	Path string
}

// NewFileRepository returns a repository backed by the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

// Load implements Repository.
func (r *FileRepository) Load() (Document, error) {
	return LoadFile(r.Path)
}

// Commit implements Repository.
func (r *FileRepository) Commit(doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal schema document: %w", err)
	}

	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(r.Path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema document %s: %w", r.Path, err)
	}

	logging.Debug().Str("path", r.Path).Int("bytes", len(data)).Msg("committed schema document")

	return nil
}

// Location implements Repository.
func (r *FileRepository) Location() string {
	return r.Path
}
