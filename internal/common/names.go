package common

import (
	"path/filepath"
	"strings"
)

// File extensions of the two artifacts kept per schema.
const (
	ExtJSON = ".json"
	ExtXML  = ".xml"
)

// FileName builds the backing file name for a schema: the lower-cased schema
// name, the lower-cased suffix and the extension.
func FileName(schemaName, suffix, ext string) string {
	return strings.ToLower(schemaName) + strings.ToLower(suffix) + ext
}

// FilePath joins dir and FileName. An empty dir means the working directory.
func FilePath(dir, schemaName, suffix, ext string) string {
	name := FileName(schemaName, suffix, ext)
	if dir == "" {
		return name
	}

	return filepath.Join(dir, name)
}
