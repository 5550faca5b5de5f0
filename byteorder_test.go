package tiffdir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteOrder(t *testing.T) {
	assert.Equal(t, uint16(0x2A00), BigEndian.Uint16([2]byte{0x2A, 0x00}))
	assert.Equal(t, uint16(0x002A), LittleEndian.Uint16([2]byte{0x2A, 0x00}))

	assert.Equal(t, int16(42), BigEndian.Int16([2]byte{0x00, 0x2A}))
	assert.Equal(t, int16(298), LittleEndian.Int16([2]byte{0x2A, 0x01}))
	assert.Equal(t, int16(-2), BigEndian.Int16([2]byte{0xFF, 0xFE}))
	assert.Equal(t, int16(-2), LittleEndian.Int16([2]byte{0xFE, 0xFF}))

	assert.Equal(t, uint32(0x01020304), BigEndian.Uint32([4]byte{1, 2, 3, 4}))
	assert.Equal(t, uint32(0x04030201), LittleEndian.Uint32([4]byte{1, 2, 3, 4}))
	assert.Equal(t, uint32(0xFFFFFFFF), LittleEndian.Uint32([4]byte{0xFF, 0xFF, 0xFF, 0xFF}))
}
