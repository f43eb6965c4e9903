package manifest

import (
	"sbe-schema-generator/internal/schema"
	"sbe-schema-generator/primitive"
)

// File represents the root of a YAML manifest.
type File struct {
	// Version of the manifest format.
	Version string `yaml:"version,omitempty"`

	// Schema is the schema name; the store lower-cases it.
	Schema string `yaml:"schema"`

	// Header recreates the schema document when complete. When absent or
	// incomplete, the document must already exist.
	Header *schema.Header `yaml:"header,omitempty"`

	Enums      []CustomType `yaml:"enums,omitempty"`
	Sets       []CustomType `yaml:"sets,omitempty"`
	Composites []Composite  `yaml:"composites,omitempty"`
	Messages   []Message    `yaml:"messages,omitempty"`
}

// CustomType declares an enum or set.
type CustomType struct {
	Name         string           `yaml:"name"`
	EncodingType string           `yaml:"encoding_type"`
	Values       schema.Structure `yaml:"values"`
}

// Composite declares a composite type and its element definitions.
type Composite struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Elements    []schema.Attributes `yaml:"elements,omitempty"`
}

// Message declares a message with its bookkeeping and wire fields.
type Message struct {
	Name       string `yaml:"name"`
	TemplateID int    `yaml:"template_id"`

	// Columns and DocumentFields are stored for the schema author only.
	Columns        []string `yaml:"columns,omitempty"`
	DocumentFields []any    `yaml:"document_fields,omitempty"`

	Fields []Field `yaml:"fields,omitempty"`
	Groups []Group `yaml:"groups,omitempty"`
}

// Group declares a repeating group.
type Group struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields,omitempty"`
}

// Field declares a wire field.
type Field struct {
	ID       int             `yaml:"id"`
	Name     string          `yaml:"name"`
	Type     string          `yaml:"type"`
	Length   int             `yaml:"length,omitempty"`
	Presence schema.Presence `yaml:"presence,omitempty"`
}

// Def returns the store definition of the field.
func (f Field) Def() schema.SbeFieldDef {
	return schema.SbeFieldDef{
		ID:       f.ID,
		Name:     f.Name,
		DataType: f.Type,
		Length:   f.Length,
		Presence: f.Presence,
	}
}

// Collection returns the primitive collection the field's type is
// registered in, or false when the type is not a primitive.
func (f Field) Collection() (schema.Collection, bool) {
	k, ok := primitive.Parse(f.Type)
	if !ok {
		return 0, false
	}

	if k == primitive.KindChar {
		return schema.CollectionStringTypes, true
	}

	return schema.CollectionNumberTypes, true
}
