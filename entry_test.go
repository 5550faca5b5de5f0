package tiffdir

import (
	"encoding/binary"
	"io"
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestReader returns a Reader over f without parsing any header.
func newTestReader(t testing.TB, f *fixture, opts ...Option) *Reader {
	t.Helper()
	r := &Reader{
		rs:    f.reader(),
		order: BigEndian,
		opts:  newOptions(opts),
	}
	if f.order == binary.LittleEndian {
		r.order = LittleEndian
	}
	require.NoError(t, r.seek(0))
	return r
}

var fixtureOrders = []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}

func TestDecodeEntry_Inline(t *testing.T) {
	tests := []struct {
		name  string
		typ   FieldType
		count uint32
		value []byte
	}{
		{"byte", TypeByte, 1, []byte{7}},
		{"bytes", TypeByte, 3, []byte{1, 2, 3}},
		{"ascii", TypeASCII, 4, []byte("abc\x00")},
		{"shorts", TypeShort, 2, []byte{1, 0, 2, 0}},
		{"long", TypeLong, 1, []byte{4, 3, 2, 1}},
		{"sshort", TypeSShort, 1, []byte{0xFE, 0xFF}},
		{"undefined", TypeUndefined, 4, []byte{9, 8, 7, 6}},
		{"float", TypeFloat, 1, []byte{0, 0, 0x80, 0x3F}},
	}

	for _, order := range fixtureOrders {
		for _, tt := range tests {
			t.Run(order.String()+"/"+tt.name, func(t *testing.T) {
				f := newFixture(order).inline(0x1234, uint16(tt.typ), tt.count, tt.value...)
				r := newTestReader(t, f)

				e, ok, err := r.decodeEntry()
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, Tag(0x1234), e.Tag)
				assert.Equal(t, tt.typ, e.Type)
				assert.Equal(t, tt.count, e.Count)
				assert.Equal(t, tt.value, e.Raw) // Padding is discarded.
				assert.Equal(t, r.order, e.ByteOrder())
				assert.Equal(t, int64(entryLen), r.pos)
			})
		}
	}
}

func TestDecodeEntry_Indirect(t *testing.T) {
	tests := []struct {
		name  string
		typ   FieldType
		count uint32
	}{
		{"rational", TypeRational, 1},
		{"double", TypeDouble, 1},
		{"shorts", TypeShort, 3},
		{"longs", TypeLong, 2},
		{"ascii", TypeASCII, 11},
		{"bytes", TypeByte, 5},
	}

	for _, order := range fixtureOrders {
		for _, tt := range tests {
			t.Run(order.String()+"/"+tt.name, func(t *testing.T) {
				size := int(tt.count * tt.typ.Width())
				value := make([]byte, size)
				for i := range value {
					value[i] = byte(i + 1)
				}
				f := newFixture(order).
					indirect(uint16(ImageWidth), uint16(tt.typ), tt.count, 16).
					pad(16).
					raw(value...)
				r := newTestReader(t, f)

				e, ok, err := r.decodeEntry()
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, tt.count, e.Count)
				assert.Equal(t, value, e.Raw)
				assert.Len(t, e.Raw, size)
				assert.Equal(t, int64(entryLen), r.pos)

				at, err := r.rs.Seek(0, io.SeekCurrent)
				require.NoError(t, err)
				assert.Equal(t, int64(entryLen), at)
			})
		}
	}
}

func TestDecodeEntry_IndirectThenInline(t *testing.T) {
	f := newFixture(binary.LittleEndian).
		header(8).
		u16(2).
		indirect(uint16(BitsPerSample), uint16(TypeShort), 3, 40).
		short(uint16(SamplesPerPixel), 3).
		u32(0).
		pad(40).
		u16(8).u16(8).u16(8)

	r, err := NewReader(f.reader())
	require.NoError(t, err)
	d, err := r.ReadDirectory(8)
	require.NoError(t, err)

	require.Len(t, d.Fields, 2)
	bps, err := d.Fields[BitsPerSample].Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{8, 8, 8}, bps)
	spp, err := d.Fields[SamplesPerPixel].Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, spp)
}

func TestDecodeEntry_TruncatedValue(t *testing.T) {
	f := newFixture(binary.BigEndian).
		indirect(uint16(StripOffsets), uint16(TypeLong), 4, 16).
		pad(20)
	r := newTestReader(t, f)

	_, _, err := r.decodeEntry()
	require.Error(t, err)
	assert.True(t, IsTruncated(err))
	assert.False(t, IsFormat(err))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, int64(entryLen), r.pos, "cursor restored after a failed detour")
}

func TestDecodeEntry_TruncatedEntry(t *testing.T) {
	f := newFixture(binary.BigEndian).u16(uint16(ImageWidth)).u16(uint16(TypeShort)).raw(0, 0)
	r := newTestReader(t, f)

	_, _, err := r.decodeEntry()
	assert.True(t, IsTruncated(err))
}

func TestDecodeEntry_OddValueOffset(t *testing.T) {
	f := newFixture(binary.BigEndian).
		indirect(uint16(Make), uint16(TypeASCII), 6, 17).
		pad(17).
		raw([]byte("Canon\x00")...)

	_, _, err := newTestReader(t, f).decodeEntry()
	assert.True(t, IsFormat(err))
	assert.Contains(t, err.Error(), "17")

	e, ok, err := newTestReader(t, f, WithoutAlignmentCheck()).decodeEntry()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("Canon\x00"), e.Raw)
}

func TestDecodeEntry_MaxValueSize(t *testing.T) {
	f := newFixture(binary.BigEndian).
		indirect(uint16(StripOffsets), uint16(TypeLong), 2, 12).
		u32(1).u32(2)

	_, _, err := newTestReader(t, f, WithMaxValueSize(4)).decodeEntry()
	var target UnsupportedError
	assert.True(t, errors.As(err, &target))
}

func TestDecodeEntry_TypeZero(t *testing.T) {
	f := newFixture(binary.LittleEndian).inline(uint16(ImageWidth), 0, 1, 1)

	_, ok, err := newTestReader(t, f).decodeEntry()
	assert.False(t, ok)
	assert.True(t, IsFormat(err))
}

func TestDecodeEntry_CountZero(t *testing.T) {
	f := newFixture(binary.LittleEndian).inline(uint16(ImageWidth), uint16(TypeShort), 0)

	_, ok, err := newTestReader(t, f).decodeEntry()
	assert.False(t, ok)
	assert.True(t, IsFormat(err))
}

func TestDecodeEntry_UnexpectedType(t *testing.T) {
	for _, code := range []uint16{13, 200, 0xFFFF} {
		f := newFixture(binary.LittleEndian).inline(uint16(ImageWidth), code, 1, 1)

		e, ok, err := newTestReader(t, f).decodeEntry()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, TypeUnexpected, e.Type)
	}
}

func TestEntry_Uints(t *testing.T) {
	e := Entry{Type: TypeShort, Count: 2, Raw: []byte{1, 0, 2, 0}, order: LittleEndian}
	u, err := e.Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, u)

	e = Entry{Type: TypeLong, Count: 1, Raw: []byte{0, 1, 0, 0}, order: BigEndian}
	u, err = e.Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{65536}, u)

	e = Entry{Type: TypeRational, Count: 1, Raw: make([]byte, 8)}
	_, err = e.Uints()
	var target UnsupportedError
	assert.True(t, errors.As(err, &target))
}

func TestEntry_Ints(t *testing.T) {
	e := Entry{Type: TypeSShort, Count: 2, Raw: []byte{0xFF, 0xFE, 0, 3}, order: BigEndian}
	v, err := e.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{-2, 3}, v)

	e = Entry{Type: TypeSByte, Count: 1, Raw: []byte{0x80}}
	v, err = e.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int64{-128}, v)
}

func TestEntry_Rationals(t *testing.T) {
	e := Entry{Type: TypeRational, Count: 1, Raw: []byte{0, 0, 0, 1, 0, 0, 0, 3}, order: BigEndian}
	v, err := e.Rationals()
	require.NoError(t, err)
	assert.Equal(t, 0, v[0].Cmp(big.NewRat(1, 3)))

	e = Entry{Type: TypeSRational, Count: 1, Raw: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 2}, order: BigEndian}
	v, err = e.Rationals()
	require.NoError(t, err)
	assert.Equal(t, 0, v[0].Cmp(big.NewRat(-1, 2)))

	e = Entry{Type: TypeRational, Count: 1, Raw: []byte{0, 0, 0, 1, 0, 0, 0, 0}, order: BigEndian}
	_, err = e.Rationals()
	assert.True(t, IsFormat(err))
}

func TestEntry_Floats(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, math.Float64bits(1.5))
	e := Entry{Type: TypeDouble, Count: 1, Raw: raw, order: LittleEndian}
	v, err := e.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, v)

	e = Entry{Type: TypeRational, Count: 1, Raw: []byte{0, 0, 0, 1, 0, 0, 0, 2}, order: BigEndian}
	v, err = e.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, v)

	e = Entry{Type: TypeShort, Count: 1, Raw: []byte{0, 7}, order: BigEndian}
	v, err = e.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, v)

	for _, typ := range []FieldType{TypeASCII, TypeUndefined} {
		e = Entry{Tag: Make, Type: typ, Count: 1, Raw: []byte{0}}
		_, err = e.Floats()
		var target UnsupportedError
		require.True(t, errors.As(err, &target), "%v", typ)
		assert.Contains(t, err.Error(), "as floats")
		assert.NotContains(t, err.Error(), "unsigned")
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(ImageWidth, TypeShort, LittleEndian, []byte{1, 0, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), e.Count)
	assert.Equal(t, LittleEndian, e.ByteOrder())
	u, err := e.Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, u)

	e, err = NewEntry(ImageWidth, TypeShort, BigEndian, []byte{1, 0, 2, 0})
	require.NoError(t, err)
	u, err = e.Uints()
	require.NoError(t, err)
	assert.Equal(t, []uint64{256, 512}, u)

	// Literals decode as big-endian.
	assert.Equal(t, BigEndian, Entry{}.ByteOrder())

	_, err = NewEntry(ImageWidth, TypeShort, LittleEndian, []byte{1, 0, 2})
	assert.True(t, IsFormat(err))
	_, err = NewEntry(ImageWidth, TypeShort, LittleEndian, nil)
	assert.True(t, IsFormat(err))
	_, err = NewEntry(ImageWidth, TypeUnknown, LittleEndian, []byte{1})
	assert.True(t, IsFormat(err))
}

func TestEntry_ASCII(t *testing.T) {
	e := Entry{Type: TypeASCII, Count: 6, Raw: []byte("Canon\x00")}
	s, err := e.ASCII()
	require.NoError(t, err)
	assert.Equal(t, "Canon", s)

	_, err = Entry{Type: TypeByte, Count: 1, Raw: []byte{0}}.ASCII()
	assert.Error(t, err)
}

func TestEntry_Offsets(t *testing.T) {
	e := Entry{Tag: SubIFDs, Type: TypeLong, Count: 2, Raw: []byte{0, 0, 1, 0, 0, 0, 2, 0}, order: BigEndian}
	offsets, err := e.Offsets()
	require.NoError(t, err)
	assert.Equal(t, []int64{256, 512}, offsets)
}
