package tiffdir

import (
	"bytes"
	"encoding/binary"
)

// fixture builds TIFF byte streams for tests.
type fixture struct {
	order binary.ByteOrder
	buf   []byte
}

func newFixture(order binary.ByteOrder) *fixture {
	return &fixture{order: order}
}

// header writes a header with the marker matching the fixture byte order.
func (f *fixture) header(first uint32) *fixture {
	marker := beMarker
	if f.order == binary.LittleEndian {
		marker = leMarker
	}
	return f.raw([]byte(marker)...).u16(version).u32(first)
}

func (f *fixture) raw(p ...byte) *fixture {
	f.buf = append(f.buf, p...)
	return f
}

func (f *fixture) u16(v uint16) *fixture {
	return f.raw(f.short16(v)...)
}

func (f *fixture) u32(v uint32) *fixture {
	p := make([]byte, 4)
	f.order.PutUint32(p, v)
	return f.raw(p...)
}

func (f *fixture) short16(v uint16) []byte {
	p := make([]byte, 2)
	f.order.PutUint16(p, v)
	return p
}

// inline writes an entry whose value is stored in the entry, padded with 0xEE.
func (f *fixture) inline(tag, typ uint16, count uint32, value ...byte) *fixture {
	f.u16(tag).u16(typ).u32(count).raw(value...)
	for i := len(value); i < offsetLen; i++ {
		f.raw(0xEE)
	}
	return f
}

// short writes an entry holding a single SHORT value.
func (f *fixture) short(tag uint16, v uint16) *fixture {
	return f.inline(tag, uint16(TypeShort), 1, f.short16(v)...)
}

// indirect writes an entry whose value is stored at offset.
func (f *fixture) indirect(tag, typ uint16, count, offset uint32) *fixture {
	return f.u16(tag).u16(typ).u32(count).u32(offset)
}

// pad fills with zeros up to offset.
func (f *fixture) pad(offset int) *fixture {
	for len(f.buf) < offset {
		f.buf = append(f.buf, 0)
	}
	return f
}

func (f *fixture) len() uint32 {
	return uint32(len(f.buf))
}

func (f *fixture) reader() *bytes.Reader {
	return bytes.NewReader(f.buf)
}
