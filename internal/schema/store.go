package schema

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jzelinskie/stringz"

	"sbe-schema-generator/internal/common"
	"sbe-schema-generator/internal/diagnostic"
	"sbe-schema-generator/internal/logging"
)

// DefaultSuffix is appended to the schema name to build the document file name.
const DefaultSuffix = "_json_schema"

// Config holds where a Store keeps its document.
type Config struct {
	// Dir is the directory of the document; empty means the working directory.
	Dir string
	// Suffix is appended to the lower-cased schema name before ".json".
	Suffix string
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{Suffix: DefaultSuffix}
}

// Path returns the document path for the named schema.
func (c Config) Path(name string) string {
	return common.FilePath(c.Dir, name, stringz.DefaultEmpty(c.Suffix, DefaultSuffix), common.ExtJSON)
}

// Store is one session over one schema document. It is not safe for
// concurrent use, and two stores over the same document overwrite each
// other's commits.
type Store struct {
	name string
	repo Repository
	doc  Document

	notices diagnostic.Diagnostics

	batching bool
	dirty    bool
}

// Open opens the named schema in the file described by cfg. See
// OpenRepository for the header semantics.
func Open(name string, header *Header, cfg Config) (*Store, error) {
	return OpenRepository(name, header, NewFileRepository(cfg.Path(name)))
}

// OpenRepository opens the named schema on repo. When header is complete, a
// fresh empty document is committed first, replacing whatever was there.
// Otherwise the document must already exist, or an error wrapping
// ErrSchemaNotFound is returned.
func OpenRepository(name string, header *Header, repo Repository) (*Store, error) {
	s := &Store{name: strings.ToLower(name), repo: repo}

	if header != nil && header.IsComplete() {
		fresh := Document{s.name: newSchema(*header)}
		if err := repo.Commit(fresh); err != nil {
			return nil, fmt.Errorf("creating schema %q: %w", s.name, err)
		}

		logging.Info().Str("schema", s.name).Str("location", repo.Location()).Msg("created schema document")
	}

	doc, err := repo.Load()
	if err != nil {
		return nil, err
	}

	s.doc = doc

	return s, nil
}

// Name returns the lower-cased schema name.
func (s *Store) Name() string {
	return s.name
}

// Location returns where the document is persisted.
func (s *Store) Location() string {
	return s.repo.Location()
}

// Notices returns the duplicate-registration notices collected so far.
func (s *Store) Notices() diagnostic.Diagnostics {
	return s.notices
}

// Snapshot returns a deep copy of the working schema.
func (s *Store) Snapshot() (*Schema, error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	return sc.Clone(), nil
}

func (s *Store) schema() (*Schema, error) {
	sc, ok := s.doc[s.name]
	if !ok || sc == nil {
		return nil, &EntityNotFoundError{Kind: EntitySchema, Key: s.name}
	}

	return sc, nil
}

// Header returns the scalar header attributes.
func (s *Store) Header() (Header, error) {
	sc, err := s.schema()
	if err != nil {
		return Header{}, err
	}

	return sc.Header, nil
}

// FindMessage returns a copy of the named message.
func (s *Store) FindMessage(name string) (Message, error) {
	sc, err := s.schema()
	if err != nil {
		return Message{}, err
	}

	m, err := sc.message(name)
	if err != nil {
		return Message{}, err
	}

	return m.Clone(), nil
}

func (sc *Schema) message(name string) (*Message, error) {
	m := common.Find(sc.Messages, func(m *Message) bool { return m.Name == name })
	if m == nil {
		return nil, &EntityNotFoundError{Kind: EntityMessage, Key: name}
	}

	return m, nil
}

func (sc *Schema) composite(name string) (*CompositeTypeDef, error) {
	c := common.Find(sc.CompositeTypes, func(c *CompositeTypeDef) bool { return c.Name == name })
	if c == nil {
		return nil, &EntityNotFoundError{Kind: EntityComposite, Key: name}
	}

	return c, nil
}

func (sc *Schema) primitiveCollection(c Collection) (*[]PrimitiveTypeDef, error) {
	switch c {
	case CollectionNumberTypes:
		return &sc.NumberTypes, nil
	case CollectionStringTypes:
		return &sc.StringTypes, nil
	default:
		return nil, fmt.Errorf("%w: %s does not hold primitive types", ErrInvalidCollection, c)
	}
}

func (sc *Schema) customCollection(c Collection) (*[]CustomTypeDef, error) {
	switch c {
	case CollectionEnumTypes:
		return &sc.EnumTypes, nil
	case CollectionSetTypes:
		return &sc.SetTypes, nil
	default:
		return nil, fmt.Errorf("%w: %s does not hold enum or set types", ErrInvalidCollection, c)
	}
}

// PrimitiveTypes iterates the number or string types in registration order.
func (s *Store) PrimitiveTypes(c Collection) (iter.Seq[PrimitiveTypeDef], error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	list, err := sc.primitiveCollection(c)
	if err != nil {
		return nil, err
	}

	return slices.Values(*list), nil
}

// CustomTypes iterates the enum or set types in registration order.
func (s *Store) CustomTypes(c Collection) (iter.Seq[CustomTypeDef], error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	list, err := sc.customCollection(c)
	if err != nil {
		return nil, err
	}

	return slices.Values(*list), nil
}

// Composites iterates the composite types in registration order.
func (s *Store) Composites() (iter.Seq[CompositeTypeDef], error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	return slices.Values(sc.CompositeTypes), nil
}

// Messages iterates the messages in registration order.
func (s *Store) Messages() (iter.Seq[Message], error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	return slices.Values(sc.Messages), nil
}

// MessageColumns iterates the document columns of a message.
func (s *Store) MessageColumns(message string) (iter.Seq[string], error) {
	m, err := s.liveMessage(message)
	if err != nil {
		return nil, err
	}

	return slices.Values(m.DocumentColumns), nil
}

// MessageDocumentFields iterates the document fields of a message.
func (s *Store) MessageDocumentFields(message string) (iter.Seq[json.RawMessage], error) {
	m, err := s.liveMessage(message)
	if err != nil {
		return nil, err
	}

	return slices.Values(m.DocumentFields), nil
}

// MessageSbeFields iterates the wire fields attached to a message body.
func (s *Store) MessageSbeFields(message string) (iter.Seq[SbeFieldDef], error) {
	m, err := s.liveMessage(message)
	if err != nil {
		return nil, err
	}

	return slices.Values(m.SbeFields), nil
}

// MessageGroups iterates the repeating groups of a message.
func (s *Store) MessageGroups(message string) (iter.Seq[RepeatingGroup], error) {
	m, err := s.liveMessage(message)
	if err != nil {
		return nil, err
	}

	return slices.Values(m.RepeatingGroups), nil
}

func (s *Store) liveMessage(name string) (*Message, error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	return sc.message(name)
}

// IterateDocumentFields calls fn for every document field of every message.
// Iteration stops at the first error, which is returned.
func (s *Store) IterateDocumentFields(fn func(msg Message, field json.RawMessage) error) error {
	sc, err := s.schema()
	if err != nil {
		return err
	}

	for _, m := range sc.Messages {
		for _, f := range m.DocumentFields {
			if err := fn(m, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// IterateSbeFields calls fn for every wire field of every message: first the
// fields attached to the body, then the items of each repeating group in
// order. Iteration stops at the first error, which is returned.
func (s *Store) IterateSbeFields(fn func(msg Message, field SbeFieldDef) error) error {
	sc, err := s.schema()
	if err != nil {
		return err
	}

	for _, m := range sc.Messages {
		for _, f := range m.SbeFields {
			if err := fn(m, f); err != nil {
				return err
			}
		}

		for _, g := range m.RepeatingGroups {
			for _, f := range g.Items {
				if err := fn(m, f); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
