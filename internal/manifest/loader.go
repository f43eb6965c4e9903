package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sbe-schema-generator/internal/schema"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Messages {
		m := &f.Messages[i]

		defaultFields(m.Fields)

		for j := range m.Groups {
			defaultFields(m.Groups[j].Fields)
		}
	}
}

func defaultFields(fields []Field) {
	for i := range fields {
		fields[i].Presence = fields[i].Presence.OrDefault()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Open opens the manifest's schema with cfg, recreating the document when
// the manifest carries a complete header.
func Open(f *File, cfg schema.Config) (*schema.Store, error) {
	return schema.Open(f.Schema, f.Header, cfg)
}
