// Package primitive describes the primitive encoding types of the binary wire
// format and the literal boundary values emitted for the integer ones.
package primitive

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindChar
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var names = [...]string{
	KindChar:   "char",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
	KindFloat:  "float",
	KindDouble: "double",
}

// Parse returns the Kind for a primitive type name as it appears in the
// wire-schema ("uint32", "char", ...). Names are matched exactly.
func Parse(name string) (Kind, bool) {
	for k := KindChar; int(k) < KindTotal; k++ {
		if names[k] == name {
			return k, true
		}
	}

	return 0, false
}

func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat, KindDouble:
		return true
	}
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}
