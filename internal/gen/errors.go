package gen

import "errors"

var (
	// ErrUnsupportedPrimitiveType is returned for a number type whose
	// primitive has no entry in the boundary-value table.
	ErrUnsupportedPrimitiveType = errors.New("unsupported primitive type")

	// ErrNamespacesNotConfigured is returned when a message is generated for
	// a schema without an SBE namespace.
	ErrNamespacesNotConfigured = errors.New("namespaces must be configured before generating messages")
)
