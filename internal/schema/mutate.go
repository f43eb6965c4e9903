package schema

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/goccy/go-json"

	"sbe-schema-generator/internal/common"
	"sbe-schema-generator/internal/logging"
)

// Notice codes recorded for registrations that did not add anything.
const (
	CodeAlreadyExists        = "already_exists"
	CodeStructureMerged      = "structure_merged"
	CodeEncodingTypeConflict = "encoding_type_conflict"
)

// change describes one registration for notices and logs.
type change struct {
	entity string
	key    string
}

// mutate runs fn against the working schema and commits when fn reports a
// change. fn must not modify the schema before returning an error; the
// schema is nevertheless restored from a snapshot if fn or the commit fails.
func (s *Store) mutate(c change, fn func(sc *Schema) (Outcome, error)) (Outcome, error) {
	sc, err := s.schema()
	if err != nil {
		return OutcomeNone, err
	}

	snapshot, notices := sc.Clone(), s.notices

	outcome, err := fn(sc)
	if err != nil {
		s.doc[s.name], s.notices = snapshot, notices
		return OutcomeNone, err
	}

	switch outcome {
	case OutcomeExists:
		s.notice(c, CodeAlreadyExists, fmt.Sprintf("%s already exists in schema %q", c.entity, s.name))
		return outcome, nil
	case OutcomeMerged:
		s.notice(c, CodeStructureMerged, fmt.Sprintf("%s already exists in schema %q; new entries merged", c.entity, s.name))
	}

	if err := s.commit(); err != nil {
		s.doc[s.name], s.notices = snapshot, notices
		logging.Err(err).Str("schema", s.name).Str("entity", c.entity).Str("key", c.key).Msg("commit failed, change discarded")

		return OutcomeNone, err
	}

	return outcome, nil
}

func (s *Store) notice(c change, code, msg string) {
	s.notices.AddWarning(code, msg, c.entity, c.key)

	event := logging.Info()
	if code == CodeEncodingTypeConflict {
		event = logging.Warn()
	}

	event.
		Str("schema", s.name).
		Str("entity", c.entity).
		Str("key", c.key).
		Str("code", code).
		Msg(msg)
}

func (s *Store) commit() error {
	if s.batching {
		s.dirty = true
		return nil
	}

	return s.repo.Commit(s.doc)
}

// Batch runs fn with commits deferred, then commits once if anything
// changed. If fn or the final commit fails, the schema and its notices are
// restored to their state before Batch. Nested calls join the outer batch.
func (s *Store) Batch(fn func() error) error {
	if s.batching {
		return fn()
	}

	sc, err := s.schema()
	if err != nil {
		return err
	}

	snapshot, notices := sc.Clone(), s.notices

	s.batching, s.dirty = true, false

	err = fn()

	dirty := s.dirty
	s.batching, s.dirty = false, false

	if err != nil {
		s.doc[s.name], s.notices = snapshot, notices
		return err
	}

	if !dirty {
		return nil
	}

	if err := s.repo.Commit(s.doc); err != nil {
		s.doc[s.name], s.notices = snapshot, notices
		logging.Err(err).Str("schema", s.name).Msg("batch commit failed, changes discarded")

		return err
	}

	return nil
}

// AddMessage registers a message. Message names are unique within the schema.
func (s *Store) AddMessage(name string, templateID int) (Outcome, error) {
	return s.mutate(change{"message", name}, func(sc *Schema) (Outcome, error) {
		if _, err := sc.message(name); err == nil {
			return OutcomeExists, nil
		}

		m := Message{Name: name, TemplateID: templateID}
		m.normalize()
		sc.Messages = append(sc.Messages, m)

		return OutcomeAdded, nil
	})
}

// AddDocumentColumn records a document column on a message. Columns are
// unique within the message.
func (s *Store) AddDocumentColumn(message, column string) (Outcome, error) {
	return s.mutate(change{"document column", message + "." + column}, func(sc *Schema) (Outcome, error) {
		m, err := sc.message(message)
		if err != nil {
			return OutcomeNone, err
		}

		if slices.Contains(m.DocumentColumns, column) {
			return OutcomeExists, nil
		}

		m.DocumentColumns = append(m.DocumentColumns, column)

		return OutcomeAdded, nil
	})
}

// AddDocumentField records an opaque JSON document field on a message. The
// field is stored compacted; two fields with the same compacted text are
// the same field.
func (s *Store) AddDocumentField(message string, field json.RawMessage) (Outcome, error) {
	return s.mutate(change{"document field", message}, func(sc *Schema) (Outcome, error) {
		m, err := sc.message(message)
		if err != nil {
			return OutcomeNone, err
		}

		var buf bytes.Buffer
		if err := json.Compact(&buf, field); err != nil {
			return OutcomeNone, fmt.Errorf("document field of message %q is not valid JSON: %w", message, err)
		}

		compact := json.RawMessage(buf.Bytes())

		if slices.ContainsFunc(m.DocumentFields, func(f json.RawMessage) bool { return bytes.Equal(f, compact) }) {
			return OutcomeExists, nil
		}

		m.DocumentFields = append(m.DocumentFields, compact)

		return OutcomeAdded, nil
	})
}

// AddSbeField attaches a wire field to a message body. A field identical to
// one already attached is not added again. Identifiers are not checked.
func (s *Store) AddSbeField(message string, field SbeFieldDef) (Outcome, error) {
	return s.mutate(change{"sbe field", message + "." + field.Name}, func(sc *Schema) (Outcome, error) {
		m, err := sc.message(message)
		if err != nil {
			return OutcomeNone, err
		}

		if slices.Contains(m.SbeFields, field) {
			return OutcomeExists, nil
		}

		m.SbeFields = append(m.SbeFields, field)

		return OutcomeAdded, nil
	})
}

// AddRepeatingGroup adds an empty repeating group to a message. Group ids
// are unique within the message.
func (s *Store) AddRepeatingGroup(message, groupName string, groupID int) (Outcome, error) {
	return s.mutate(change{"repeating group", message + "." + strconv.Itoa(groupID)}, func(sc *Schema) (Outcome, error) {
		m, err := sc.message(message)
		if err != nil {
			return OutcomeNone, err
		}

		if m.group(groupID) != nil {
			return OutcomeExists, nil
		}

		m.RepeatingGroups = append(m.RepeatingGroups, RepeatingGroup{
			ID:    Integer(groupID),
			Name:  groupName,
			Items: []SbeFieldDef{},
		})

		return OutcomeAdded, nil
	})
}

// AddGroupField appends a wire field to a repeating group. A field identical
// to one already in the group is not added again.
func (s *Store) AddGroupField(message string, groupID int, field SbeFieldDef) (Outcome, error) {
	key := message + "." + strconv.Itoa(groupID) + "." + field.Name

	return s.mutate(change{"group field", key}, func(sc *Schema) (Outcome, error) {
		m, err := sc.message(message)
		if err != nil {
			return OutcomeNone, err
		}

		g := m.group(groupID)
		if g == nil {
			return OutcomeNone, &EntityNotFoundError{Kind: EntityRepeatingGroup, Key: strconv.Itoa(groupID), Parent: message}
		}

		if slices.Contains(g.Items, field) {
			return OutcomeExists, nil
		}

		g.Items = append(g.Items, field)

		return OutcomeAdded, nil
	})
}

func (m *Message) group(id int) *RepeatingGroup {
	return common.Find(m.RepeatingGroups, func(g *RepeatingGroup) bool { return int(g.ID) == id })
}

// AddComposite registers an empty composite type. Names are unique.
func (s *Store) AddComposite(name, description string) (Outcome, error) {
	return s.mutate(change{"composite", name}, func(sc *Schema) (Outcome, error) {
		if _, err := sc.composite(name); err == nil {
			return OutcomeExists, nil
		}

		sc.CompositeTypes = append(sc.CompositeTypes, CompositeTypeDef{
			Name:        name,
			Description: description,
			Elements:    []Attributes{},
		})

		return OutcomeAdded, nil
	})
}

// AddCompositeElement appends an element definition to a composite. An
// element with identical attributes is not added again.
func (s *Store) AddCompositeElement(composite string, element Attributes) (Outcome, error) {
	name, _ := element.Get("name")

	return s.mutate(change{"composite element", composite + "." + name}, func(sc *Schema) (Outcome, error) {
		c, err := sc.composite(composite)
		if err != nil {
			return OutcomeNone, err
		}

		if slices.ContainsFunc(c.Elements, func(e Attributes) bool { return slices.Equal(e, element) }) {
			return OutcomeExists, nil
		}

		c.Elements = append(c.Elements, element.Clone())

		return OutcomeAdded, nil
	})
}

// AddPrimitiveType registers the number or string type a field needs and
// writes the derived type name into field.CustomType, also when the type is
// already registered. Uniqueness is keyed by (data type, length): a second
// registration with another presence keeps the first one.
//
// A zero length is treated as 1 and an empty presence as required.
func (s *Store) AddPrimitiveType(c Collection, field *SbeFieldDef) (Outcome, error) {
	length := field.Length
	if length <= 0 {
		length = 1
	}

	presence := field.Presence.OrDefault()

	name, err := PrimitiveTypeName(c, field.DataType, length, presence)
	if err != nil {
		return OutcomeNone, err
	}

	field.CustomType = name

	return s.mutate(change{c.entityName(), name}, func(sc *Schema) (Outcome, error) {
		list, err := sc.primitiveCollection(c)
		if err != nil {
			return OutcomeNone, err
		}

		if slices.ContainsFunc(*list, func(t PrimitiveTypeDef) bool {
			return t.DataType == field.DataType && t.Length == length
		}) {
			return OutcomeExists, nil
		}

		*list = append(*list, PrimitiveTypeDef{
			Name:     name,
			DataType: field.DataType,
			Length:   length,
			Presence: presence,
		})

		return OutcomeAdded, nil
	})
}

// AddCustomType registers an enum or set. When a type with the same name is
// already present, the incoming structure is merged into it: existing
// entries keep their values and order, unseen entries are appended. The
// existing encoding type is kept; a differing one is only noted.
func (s *Store) AddCustomType(c Collection, encodingType, name string, structure Structure) (Outcome, error) {
	ch := change{c.entityName(), name}

	return s.mutate(ch, func(sc *Schema) (Outcome, error) {
		list, err := sc.customCollection(c)
		if err != nil {
			return OutcomeNone, err
		}

		existing := common.Find(*list, func(t *CustomTypeDef) bool { return t.Name == name })
		if existing == nil {
			*list = append(*list, CustomTypeDef{
				EncodingType: encodingType,
				Name:         name,
				Structure:    nonNil(structure.Clone()),
			})

			return OutcomeAdded, nil
		}

		if existing.EncodingType != encodingType {
			s.notice(ch, CodeEncodingTypeConflict, fmt.Sprintf(
				"%s keeps encoding type %q; %q ignored", ch.entity, existing.EncodingType, encodingType))
		}

		merged := existing.Structure.Union(structure)
		if len(merged) == len(existing.Structure) {
			return OutcomeExists, nil
		}

		existing.Structure = merged

		return OutcomeMerged, nil
	})
}

func (c Collection) entityName() string {
	switch c {
	case CollectionNumberTypes:
		return "number type"
	case CollectionStringTypes:
		return "string type"
	case CollectionEnumTypes:
		return "enum"
	case CollectionSetTypes:
		return "set"
	case CollectionCompositeTypes:
		return "composite"
	case CollectionMessages:
		return "message"
	default:
		return c.String()
	}
}
