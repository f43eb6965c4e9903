package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaNotFound is returned by Open when no header was supplied and
	// the backing document does not exist.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrEntityNotFound matches every *EntityNotFoundError.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrInvalidCollection is returned when an operation is given a
	// collection that cannot hold the requested entity kind.
	ErrInvalidCollection = errors.New("invalid collection")
)

// EntityKind names the kind of entity a lookup was looking for.
type EntityKind string

const (
	EntitySchema         EntityKind = "schema"
	EntityMessage        EntityKind = "message"
	EntityComposite      EntityKind = "composite"
	EntityRepeatingGroup EntityKind = "repeating group"
)

// EntityNotFoundError reports a missing schema, message, composite or
// repeating group.
type EntityNotFoundError struct {
	Kind EntityKind
	Key  string
	// Parent is the enclosing message for repeating groups.
	Parent string
}

func (e *EntityNotFoundError) Error() string {
	if e.Parent != "" {
		return fmt.Sprintf("%s %q not found in %q", e.Kind, e.Key, e.Parent)
	}

	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is makes errors.Is(err, ErrEntityNotFound) hold.
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}
