package tiffdir

import "fmt"

// FieldType is the data type of an IFD entry.
type FieldType uint16

// TypeOf maps a type code read from an entry to its FieldType.
// Code 0 maps to TypeUnknown and codes above 12 to TypeUnexpected.
func TypeOf(code uint16) FieldType {
	if int(code) >= len(widths) {
		return TypeUnexpected
	}
	return FieldType(code)
}

// Width returns the length in bytes of one value of type t,
// 0 for TypeUnknown and TypeUnexpected.
func (t FieldType) Width() uint32 {
	if int(t) >= len(widths) {
		return 0
	}
	return widths[t]
}

var typeNames = [...]string{
	"UNKNOWN", "BYTE", "ASCII", "SHORT", "LONG", "RATIONAL",
	"SBYTE", "UNDEFINED", "SSHORT", "SLONG", "SRATIONAL", "FLOAT", "DOUBLE",
}

func (t FieldType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	if t == TypeUnexpected {
		return "UNEXPECTED"
	}
	return fmt.Sprintf("FieldType(%d)", uint16(t))
}
