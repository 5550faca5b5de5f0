package tiffdir

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Entry is a decoded IFD entry, also called a field.
// The accessors decode Raw with the byte order of the file it was read from.
// An Entry literal has the zero ByteOrder, BigEndian; use NewEntry to pick one.
type Entry struct {
	Tag   Tag
	Type  FieldType
	Count uint32 // Number of values, at least 1.
	Raw   []byte // Count*Type.Width() bytes, as stored in the file.

	order ByteOrder
}

// NewEntry returns an entry whose raw values are encoded with the given byte order.
// Count is derived from the length of raw.
func NewEntry(tag Tag, typ FieldType, order ByteOrder, raw []byte) (Entry, error) {
	w := typ.Width()
	if w == 0 {
		return Entry{}, formatErrorf("entry %v has type %v", tag, typ)
	}
	if len(raw) == 0 || uint32(len(raw))%w != 0 {
		return Entry{}, formatErrorf("entry %v has %d bytes, want a non-zero multiple of %d", tag, len(raw), w)
	}
	return Entry{
		Tag:   tag,
		Type:  typ,
		Count: uint32(len(raw)) / w,
		Raw:   raw,
		order: order,
	}, nil
}

// ByteOrder returns the byte order of the raw values.
func (e Entry) ByteOrder() ByteOrder {
	return e.order
}

// decodeEntry decodes the 12-byte entry at the cursor. On success the cursor
// ends right after the entry, whether or not the value was stored out of line.
// It returns false without error when the entry has an unexpected type, which
// ends the directory early: TIFF 6.0 asks readers to skip over fields
// containing an unexpected field type.
func (r *Reader) decodeEntry() (e Entry, ok bool, err error) {
	start := r.pos
	e.order = r.order

	code, err := r.readUint16()
	if err != nil {
		return e, false, err
	}
	e.Tag = TagOf(code)

	if code, err = r.readUint16(); err != nil {
		return e, false, err
	}
	e.Type = TypeOf(code)
	switch e.Type {
	case TypeUnexpected:
		return e, false, nil
	case TypeUnknown:
		return e, false, formatErrorf("entry %v at offset %d has type code 0", e.Tag, start)
	}

	if e.Count, err = r.readUint32(); err != nil {
		return e, false, err
	}
	if e.Count == 0 {
		return e, false, formatErrorf("entry %v at offset %d has no value", e.Tag, start)
	}

	// Value/Offset (p. 15 of TIFF 6.0): the value is stored in the entry
	// itself if and only if it fits into 4 bytes. A shorter value is
	// left-justified.
	size := int64(e.Count) * int64(e.Type.Width())
	if size <= offsetLen {
		var p [offsetLen]byte
		if err = r.readFull(p[:]); err != nil {
			return e, false, err
		}
		e.Raw = append([]byte(nil), p[:size]...)
		return e, true, nil
	}

	if size > r.opts.maxValueSize {
		return e, false, UnsupportedError(fmt.Sprintf("entry %v value of %d bytes exceeds %d bytes", e.Tag, size, r.opts.maxValueSize))
	}
	offset, err := r.readOffset(fmt.Sprintf("entry %v value", e.Tag), r.opts.alignment)
	if err != nil {
		return e, false, err
	}
	if e.Raw, err = r.readAt(offset, size); err != nil {
		return e, false, err
	}
	return e, true, nil
}

// readAt reads n bytes at offset then moves the cursor back where it was,
// including when the read fails.
// Data is buffered as it arrives so a bogus size on a short file does not
// allocate the whole value upfront.
func (r *Reader) readAt(offset, n int64) (p []byte, err error) {
	saved := r.pos
	defer func() {
		if serr := r.seek(saved); serr != nil && err == nil {
			p, err = nil, serr
		}
	}()

	if err = r.seek(offset); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if n <= maxChunkSize {
		buf.Grow(int(n))
	}
	copied, err := io.CopyN(&buf, r.rs, n)
	r.pos += copied
	switch {
	case err == io.EOF:
		return nil, &TruncationError{Offset: offset, Want: int(n)}
	case err != nil:
		return nil, errors.Wrapf(err, "could not read %d bytes at offset %d", n, offset)
	}
	return buf.Bytes(), nil
}

// Uints decodes BYTE, SHORT and LONG values.
func (e Entry) Uints() ([]uint64, error) {
	bo := e.order.Binary()
	u := make([]uint64, e.Count)
	switch e.Type {
	case TypeByte:
		for i := range u {
			u[i] = uint64(e.Raw[i])
		}
	case TypeShort:
		for i := range u {
			u[i] = uint64(bo.Uint16(e.Raw[2*i:]))
		}
	case TypeLong:
		for i := range u {
			u[i] = uint64(bo.Uint32(e.Raw[4*i:]))
		}
	default:
		return nil, UnsupportedError(fmt.Sprintf("%v values of %v as unsigned integers", e.Type, e.Tag))
	}
	return u, nil
}

// Ints decodes SBYTE, SSHORT and SLONG values.
func (e Entry) Ints() ([]int64, error) {
	bo := e.order.Binary()
	v := make([]int64, e.Count)
	switch e.Type {
	case TypeSByte:
		for i := range v {
			v[i] = int64(int8(e.Raw[i]))
		}
	case TypeSShort:
		for i := range v {
			v[i] = int64(int16(bo.Uint16(e.Raw[2*i:])))
		}
	case TypeSLong:
		for i := range v {
			v[i] = int64(int32(bo.Uint32(e.Raw[4*i:])))
		}
	default:
		return nil, UnsupportedError(fmt.Sprintf("%v values of %v as signed integers", e.Type, e.Tag))
	}
	return v, nil
}

// Rationals decodes RATIONAL and SRATIONAL values.
func (e Entry) Rationals() ([]*big.Rat, error) {
	if e.Type != TypeRational && e.Type != TypeSRational {
		return nil, UnsupportedError(fmt.Sprintf("%v values of %v as rationals", e.Type, e.Tag))
	}
	bo := e.order.Binary()
	v := make([]*big.Rat, e.Count)
	for i := range v {
		num, denom := bo.Uint32(e.Raw[8*i:]), bo.Uint32(e.Raw[8*i+4:])
		if denom == 0 {
			return nil, formatErrorf("%v value #%d has a zero denominator", e.Tag, i)
		}
		if e.Type == TypeSRational {
			v[i] = big.NewRat(int64(int32(num)), int64(int32(denom)))
		} else {
			v[i] = big.NewRat(int64(num), int64(denom))
		}
	}
	return v, nil
}

// Floats converts any numeric values to float64.
func (e Entry) Floats() ([]float64, error) {
	bo := e.order.Binary()
	v := make([]float64, e.Count)
	switch e.Type {
	case TypeFloat:
		for i := range v {
			v[i] = float64(math.Float32frombits(bo.Uint32(e.Raw[4*i:])))
		}
	case TypeDouble:
		for i := range v {
			v[i] = math.Float64frombits(bo.Uint64(e.Raw[8*i:]))
		}
	case TypeRational, TypeSRational:
		rats, err := e.Rationals()
		if err != nil {
			return nil, err
		}
		for i, r := range rats {
			v[i], _ = r.Float64()
		}
	case TypeSByte, TypeSShort, TypeSLong:
		ints, _ := e.Ints()
		for i, n := range ints {
			v[i] = float64(n)
		}
	case TypeByte, TypeShort, TypeLong:
		uints, err := e.Uints()
		if err != nil {
			return nil, err
		}
		for i, n := range uints {
			v[i] = float64(n)
		}
	default:
		return nil, UnsupportedError(fmt.Sprintf("%v values of %v as floats", e.Type, e.Tag))
	}
	return v, nil
}

// ASCII returns an ASCII value without its trailing NUL bytes.
func (e Entry) ASCII() (string, error) {
	if e.Type != TypeASCII {
		return "", UnsupportedError(fmt.Sprintf("%v values of %v as a string", e.Type, e.Tag))
	}
	return string(bytes.TrimRight(e.Raw, "\x00")), nil
}

// Offsets decodes the values of a pointer entry such as SubIFDs or ExifIFD.
func (e Entry) Offsets() ([]int64, error) {
	u, err := e.Uints()
	if err != nil {
		return nil, err
	}
	offsets := make([]int64, len(u))
	for i := range u {
		offsets[i] = int64(u[i])
	}
	return offsets, nil
}
