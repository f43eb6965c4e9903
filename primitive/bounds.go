package primitive

// Bounds holds the literal null, minimum and maximum values of an integer
// kind, exactly as they are written into generated type definitions.
type Bounds struct {
	Null string
	Min  string
	Max  string
}

// The null value takes the slot that is excluded from the valid range: the
// minimum for signed kinds, the maximum for unsigned ones.
var bounds = map[Kind]Bounds{
	KindInt8:   {Null: "-128", Min: "-127", Max: "127"},
	KindUint8:  {Null: "255", Min: "0", Max: "254"},
	KindInt16:  {Null: "-32768", Min: "-32767", Max: "32767"},
	KindUint16: {Null: "65535", Min: "0", Max: "65534"},
	KindInt32:  {Null: "-2147483648", Min: "-2147483647", Max: "2147483647"},
	KindUint32: {Null: "4294967295", Min: "0", Max: "4294967294"},
	KindInt64:  {Null: "-9223372036854775808", Min: "-9223372036854775807", Max: "9223372036854775807"},
	KindUint64: {Null: "18446744073709551615", Min: "0", Max: "18446744073709551614"},
}

// Bounds returns the boundary literals for the integer kinds. Other kinds
// have no entry.
func (k Kind) Bounds() (Bounds, bool) {
	b, ok := bounds[k]
	return b, ok
}

// LookupBounds resolves a primitive type name and returns its boundary
// literals. It reports false for names outside the integer table.
func LookupBounds(name string) (Bounds, bool) {
	k, ok := Parse(name)
	if !ok {
		return Bounds{}, false
	}

	return k.Bounds()
}
