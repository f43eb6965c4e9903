package schema

import (
	"github.com/goccy/go-json"
)

// Presence tells whether a field is always encoded, may hold the null value,
// or is fixed to a constant.
type Presence string

const (
	PresenceRequired Presence = "required"
	PresenceOptional Presence = "optional"
	PresenceConstant Presence = "constant"
)

// IsValid returns true if the presence is a recognized value.
func (p Presence) IsValid() bool {
	return p == PresenceRequired || p == PresenceOptional || p == PresenceConstant
}

// OrDefault returns required for an empty presence.
func (p Presence) OrDefault() Presence {
	if p == "" {
		return PresenceRequired
	}

	return p
}

// Namespaces are the four namespace URIs bound on the generated root element.
type Namespaces struct {
	SBE string `json:"namespace_sbe" yaml:"sbe"`
	ENX string `json:"namespace_enx" yaml:"enx"`
	STR string `json:"namespace_str" yaml:"str"`
	EXT string `json:"namespace_ext" yaml:"ext"`
}

// Header holds the scalar attributes of a schema.
type Header struct {
	Namespaces `yaml:"namespaces"`

	Package         string  `json:"package"          yaml:"package"`
	SchemaID        Integer `json:"schema_id"        yaml:"schema_id"`
	Version         Integer `json:"version"          yaml:"version"`
	SemanticVersion string  `json:"semantic_version" yaml:"semantic_version"`
	Description     string  `json:"description"      yaml:"description"`
	ByteOrder       string  `json:"byte_order"       yaml:"byte_order"`
}

// IsComplete reports whether every textual header attribute is set. Only a
// complete header creates a new schema document.
func (h Header) IsComplete() bool {
	for _, v := range []string{
		h.SBE, h.ENX, h.STR, h.EXT,
		h.Package, h.SemanticVersion, h.Description, h.ByteOrder,
	} {
		if v == "" {
			return false
		}
	}

	return true
}

// Schema is the object stored under the schema name in the document.
type Schema struct {
	Header

	NumberTypes    []PrimitiveTypeDef `json:"array_number_data_types"`
	StringTypes    []PrimitiveTypeDef `json:"array_string_data_types"`
	EnumTypes      []CustomTypeDef    `json:"array_enum_data_types"`
	SetTypes       []CustomTypeDef    `json:"array_set_data_types"`
	CompositeTypes []CompositeTypeDef `json:"array_composite_data_types"`
	Messages       []Message          `json:"array_document_messages"`
}

// Document is the persisted form: a single-key mapping from the lower-cased
// schema name to its Schema.
type Document map[string]*Schema

// PrimitiveTypeDef is a registered number or string type.
type PrimitiveTypeDef struct {
	// Name is the derived type name, e.g. "uint32_t" or "char8_optional".
	Name     string   `json:"name_type"`
	DataType string   `json:"data_type"`
	Length   int      `json:"length"`
	Presence Presence `json:"presence"`
}

// Structure maps symbolic names to literal values, in insertion order.
type Structure = OrderedMap[any]

// Attributes is an ordered attribute set of a composite element.
type Attributes = OrderedMap[string]

// CustomTypeDef is a registered enum or set.
type CustomTypeDef struct {
	EncodingType string    `json:"encoding_type"`
	Name         string    `json:"data_type"`
	Structure    Structure `json:"structure"`
}

// CompositeTypeDef is a named, ordered group of element definitions.
type CompositeTypeDef struct {
	Name        string       `json:"name_composite"`
	Description string       `json:"description_composite"`
	Elements    []Attributes `json:"items"`
}

// Message is a message template with its bookkeeping and wire fields.
type Message struct {
	Name       string `json:"message_name"`
	TemplateID int    `json:"template_id"`

	// DocumentColumns and DocumentFields belong to the schema author and are
	// never emitted to the wire-schema.
	DocumentColumns []string          `json:"array_document_columns"`
	DocumentFields  []json.RawMessage `json:"array_document_fields"`

	SbeFields       []SbeFieldDef    `json:"array_sbe_fields"`
	RepeatingGroups []RepeatingGroup `json:"array_sbe_repeating_groups"`
}

// RepeatingGroup is a variable-count sequence of fields within a message.
type RepeatingGroup struct {
	ID    Integer       `json:"group_id"`
	Name  string        `json:"group_name"`
	Items []SbeFieldDef `json:"items"`
}

// SbeFieldDef is a wire field of a message body or repeating group.
type SbeFieldDef struct {
	ID       int      `json:"field_id"`
	Name     string   `json:"field_name"`
	DataType string   `json:"data_type"`
	Length   int      `json:"length,omitempty"`
	Presence Presence `json:"presence"`
	// CustomType is filled in by AddPrimitiveType.
	CustomType string `json:"custom_type,omitempty"`
}

// TypeName returns the type a field references: its derived custom type
// when present, its raw data type otherwise.
func (f SbeFieldDef) TypeName() string {
	if f.CustomType != "" {
		return f.CustomType
	}

	return f.DataType
}

// IsOptional returns true if the field is marked optional.
func (f SbeFieldDef) IsOptional() bool {
	return f.Presence == PresenceOptional
}
