// Package manifest provides the YAML dictionary manifest: a declarative
// description of a schema's types and messages that is applied to a
// schema.Store in one batch.
//
// Applying a manifest is repeatable. Entities already present in the store
// are reported as existing, enum and set values are merged, and nothing is
// ever removed.
//
// # File Overview
//
//	version: "1"
//	schema: MD
//	header:                       # optional; a complete header recreates the document
//	  namespaces:
//	    sbe: http://fixprotocol.io/2016/sbe
//	    enx: http://example.com/enx
//	    str: http://example.com/str
//	    ext: http://example.com/ext
//	  package: com.example
//	  schema_id: 1
//	  version: 0
//	  semantic_version: "5.2"
//	  description: market data
//	  byte_order: littleEndian
//	enums:
//	  - name: Side
//	    encoding_type: char
//	    values: {Buy: "1", Sell: "2"}
//	sets:
//	  - name: Flags
//	    encoding_type: uint8
//	    values: {Implied: 0, Final: 1}
//	composites:
//	  - name: decimal
//	    description: price with exponent
//	    elements:
//	      - {name: mantissa, primitiveType: int64}
//	      - {name: exponent, primitiveType: int8}
//	messages:
//	  - name: Trade
//	    template_id: 1
//	    columns: [price, side]
//	    document_fields:
//	      - {column: price, width: 12}
//	    fields:
//	      - {id: 1, name: Price, type: uint32}
//	      - {id: 2, name: Symbol, type: char, length: 8, presence: optional}
//	      - {id: 3, name: Side, type: Side}
//	    groups:
//	      - id: 100
//	        name: Legs
//	        fields:
//	          - {id: 101, name: LegQty, type: uint16}
//
// # Field Types
//
// A field whose type is a primitive registers the matching number or string
// type first ("char" goes to the string types, integers to the number types)
// and references the derived type name. Any other type is referenced as
// written and should name an enum, set or composite.
package manifest
