package schema

import (
	"fmt"
	"strconv"
)

// Collection names one of the six ordered collections of a schema.
type Collection int

const (
	CollectionNumberTypes Collection = iota + 1
	CollectionStringTypes
	CollectionEnumTypes
	CollectionSetTypes
	CollectionCompositeTypes
	CollectionMessages
)

var collectionKeys = map[Collection]string{
	CollectionNumberTypes:    "array_number_data_types",
	CollectionStringTypes:    "array_string_data_types",
	CollectionEnumTypes:      "array_enum_data_types",
	CollectionSetTypes:       "array_set_data_types",
	CollectionCompositeTypes: "array_composite_data_types",
	CollectionMessages:       "array_document_messages",
}

// String returns the document key of the collection.
func (c Collection) String() string {
	if k, ok := collectionKeys[c]; ok {
		return k
	}

	return "Collection(" + strconv.Itoa(int(c)) + ")"
}

// PrimitiveTypeName derives the registered name of a primitive type:
// "{dataType}{length}" for strings, with an "_optional" suffix when optional,
// and "{dataType}_t" for numbers.
func PrimitiveTypeName(c Collection, dataType string, length int, presence Presence) (string, error) {
	switch c {
	case CollectionStringTypes:
		if presence == PresenceOptional {
			return fmt.Sprintf("%s%d_%s", dataType, length, presence), nil
		}

		return fmt.Sprintf("%s%d", dataType, length), nil
	case CollectionNumberTypes:
		return dataType + "_t", nil
	default:
		return "", fmt.Errorf("%w: %s does not hold primitive types", ErrInvalidCollection, c)
	}
}
