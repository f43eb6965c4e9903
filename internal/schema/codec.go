package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
)

const jsonIndent = "    "

// LoadFile loads and parses a schema document from the given path. A missing
// file is reported as ErrSchemaNotFound.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: schema document %s does not exist", ErrSchemaNotFound, path)
		}

		return nil, fmt.Errorf("failed to read schema document %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema document %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses JSON data into a Document.
func Parse(data []byte) (Document, error) {
	var doc Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc == nil {
		doc = Document{}
	}

	applyDefaults(doc)

	return doc, nil
}

// Marshal serializes a Document as indented JSON. Non-ASCII and HTML
// characters are written as-is.
func Marshal(doc Document) ([]byte, error) {
	applyDefaults(doc)

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// applyDefaults replaces nil collections with empty ones so that they are
// written as [] rather than null.
func applyDefaults(doc Document) {
	for _, s := range doc {
		if s != nil {
			s.normalize()
		}
	}
}

func (s *Schema) normalize() {
	s.NumberTypes = nonNil(s.NumberTypes)
	s.StringTypes = nonNil(s.StringTypes)
	s.EnumTypes = nonNil(s.EnumTypes)
	s.SetTypes = nonNil(s.SetTypes)
	s.CompositeTypes = nonNil(s.CompositeTypes)
	s.Messages = nonNil(s.Messages)

	for i := range s.CompositeTypes {
		s.CompositeTypes[i].Elements = nonNil(s.CompositeTypes[i].Elements)
	}

	for i := range s.Messages {
		s.Messages[i].normalize()
	}
}

func (m *Message) normalize() {
	m.DocumentColumns = nonNil(m.DocumentColumns)
	m.DocumentFields = nonNil(m.DocumentFields)
	m.SbeFields = nonNil(m.SbeFields)
	m.RepeatingGroups = nonNil(m.RepeatingGroups)

	// Document fields are kept compact; the indented file hands them back
	// re-indented.
	for i, f := range m.DocumentFields {
		var buf bytes.Buffer
		if err := json.Compact(&buf, f); err == nil {
			m.DocumentFields[i] = buf.Bytes()
		}
	}

	for i := range m.RepeatingGroups {
		m.RepeatingGroups[i].Items = nonNil(m.RepeatingGroups[i].Items)
	}
}

func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}

// newSchema returns an empty schema carrying the given header.
func newSchema(h Header) *Schema {
	s := &Schema{Header: h}
	s.normalize()

	return s
}
