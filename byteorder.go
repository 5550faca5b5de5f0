package tiffdir

import "encoding/binary"

// ByteOrder is the byte order declared by the file header.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Binary returns the encoding/binary counterpart of o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Int16 decodes a signed 16-bit integer.
func (o ByteOrder) Int16(b [2]byte) int16 {
	return int16(o.Uint16(b))
}

// Uint16 decodes an unsigned 16-bit integer.
func (o ByteOrder) Uint16(b [2]byte) uint16 {
	return o.Binary().Uint16(b[:])
}

// Uint32 decodes an unsigned 32-bit integer.
func (o ByteOrder) Uint32(b [4]byte) uint32 {
	return o.Binary().Uint32(b[:])
}

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian (II)"
	}
	return "big-endian (MM)"
}
