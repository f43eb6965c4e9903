package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// writeFile overwrites the artifact at path, creating its directory if it
// doesn't exist.
func writeFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
