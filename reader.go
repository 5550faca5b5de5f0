package tiffdir

// Resources:
// https://www.itu.int/itudoc/itu-t/com16/tiff-fx/docs/tiff6.pdf (TIFF 6.0)
// https://www.awaresystems.be/imaging/tiff/specification/TIFFPM6.pdf (SubIFD Trees)
// https://www.loc.gov/preservation/digital/formats/content/tiff_tags.shtml (Tags description)
// DNG:
// https://www.adobe.com/content/dam/acom/en/products/photoshop/pdfs/dng_spec_1.4.0.0.pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Reader reads the directories of a TIFF or DNG file from a seekable stream.
//
// A Reader owns the stream cursor and seeks before every directory, so the
// stream must not be shared with another reader or used concurrently.
// Nothing is cached: every call parses the stream again.
type Reader struct {
	rs    io.ReadSeeker
	pos   int64 // Cursor position in rs.
	order ByteOrder
	first int64 // Offset of the first IFD.
	opts  options
}

// NewReader validates the file header of rs and returns a Reader positioned
// on its first IFD.
func NewReader(rs io.ReadSeeker, opts ...Option) (*Reader, error) {
	r := &Reader{
		rs:   rs,
		opts: newOptions(opts),
	}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

// ByteOrder returns the byte order declared by the header.
func (r *Reader) ByteOrder() ByteOrder {
	return r.order
}

// FirstOffset returns the offset of the first IFD.
func (r *Reader) FirstOffset() int64 {
	return r.first
}

func (r *Reader) readHeader() error {
	if err := r.seek(0); err != nil {
		return err
	}

	var marker [2]byte
	if err := r.readFull(marker[:]); err != nil {
		return err
	}
	switch string(marker[:]) {
	case leMarker:
		r.order = LittleEndian
	case beMarker:
		r.order = BigEndian
	default:
		return formatErrorf("byte order marker is %#x, want %q or %q", marker, leMarker, beMarker)
	}

	v, err := r.readInt16()
	if err != nil {
		return err
	}
	if v != version {
		return formatErrorf("version is %d, want %d", v, version)
	}

	// There must be at least one IFD, so 0 is rejected here as well.
	first, err := r.readOffset("first IFD", true)
	if err != nil {
		return err
	}
	if first < headerLen {
		return formatErrorf("first IFD offset %d points inside the header", first)
	}
	r.first = first
	return nil
}

// ReadAll reads the chain of IFDs starting at the first one.
// Any failure discards the whole chain.
func (r *Reader) ReadAll() ([]*Directory, error) {
	var dirs []*Directory
	seen := make(map[int64]bool)
	for offset := r.first; offset != 0; {
		if seen[offset] {
			return nil, formatErrorf("IFD chain loops back to offset %d", offset)
		}
		if len(dirs) == r.opts.maxDirectories {
			return nil, formatErrorf("IFD chain has more than %d directories", r.opts.maxDirectories)
		}
		seen[offset] = true

		d, err := r.ReadDirectory(offset)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
		offset = d.Next
	}
	return dirs, nil
}

// ReadSubIFDs reads the IFDs pointed by the SubIFDs entry of d, in order.
// It returns nil when d has no such entry.
func (r *Reader) ReadSubIFDs(d *Directory) ([]*Directory, error) {
	e, ok := d.Fields[SubIFDs]
	if !ok {
		return nil, nil
	}
	offsets, err := e.Offsets()
	if err != nil {
		return nil, err
	}

	subs := make([]*Directory, 0, len(offsets))
	for _, offset := range offsets {
		sub, err := r.ReadDirectory(offset)
		if err != nil {
			return nil, errors.WithMessagef(err, "SubIFD of IFD at offset %d", d.Offset)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// DNG holds the directories of a DNG file.
type DNG struct {
	Primary *Directory // First IFD, usually a thumbnail.
	// HighRes is the SubIFD holding the primary (highest-resolution) image:
	// the first one with a NewSubFileType of 0, or the first SubIFD.
	HighRes *Directory
	SubIFDs []*Directory
}

// ReadDNG reads the first IFD and the SubIFDs it points to.
func (r *Reader) ReadDNG() (*DNG, error) {
	primary, err := r.ReadDirectory(r.first)
	if err != nil {
		return nil, err
	}
	if _, ok := primary.Fields[SubIFDs]; !ok {
		return nil, formatErrorf("first IFD at offset %d has no %v entry", primary.Offset, SubIFDs)
	}

	subs, err := r.ReadSubIFDs(primary)
	if err != nil {
		return nil, err
	}
	dng := &DNG{
		Primary: primary,
		HighRes: subs[0],
		SubIFDs: subs,
	}
	for _, sub := range subs {
		if v, ok := sub.firstVal(NewSubFileType); ok && v == sftPrimaryImage {
			dng.HighRes = sub
			break
		}
	}
	return dng, nil
}

//------------------------//
// Stream                 //
//------------------------//

func (r *Reader) seek(offset int64) error {
	if _, err := r.rs.Seek(offset, io.SeekStart); err != nil {
		return errors.Wrapf(err, "could not seek to offset %d", offset)
	}
	r.pos = offset
	return nil
}

func (r *Reader) readFull(p []byte) error {
	start := r.pos
	n, err := io.ReadFull(r.rs, p)
	r.pos += int64(n)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return &TruncationError{Offset: start, Want: len(p)}
	default:
		return errors.Wrapf(err, "could not read %d bytes at offset %d", len(p), start)
	}
}

func (r *Reader) readInt16() (int16, error) {
	var p [2]byte
	if err := r.readFull(p[:]); err != nil {
		return 0, err
	}
	return r.order.Int16(p), nil
}

func (r *Reader) readUint16() (uint16, error) {
	var p [2]byte
	if err := r.readFull(p[:]); err != nil {
		return 0, err
	}
	return r.order.Uint16(p), nil
}

func (r *Reader) readUint32() (uint32, error) {
	var p [4]byte
	if err := r.readFull(p[:]); err != nil {
		return 0, err
	}
	return r.order.Uint32(p), nil
}

// readOffset reads a 4-byte offset. When aligned is set, the offset must
// begin on a word boundary (p. 13 of TIFF 6.0).
func (r *Reader) readOffset(what string, aligned bool) (int64, error) {
	start := r.pos
	v, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	offset := int64(v)
	if aligned && offset%2 != 0 {
		return 0, formatErrorf("%s offset %d read at offset %d is not on a word boundary", what, offset, start)
	}
	return offset, nil
}

//------------------------//
// Decode                 //
//------------------------//

// Container is the IFD chain of a file.
type Container struct {
	Order       ByteOrder
	Directories []*Directory
}

// IsDNG reports whether the first directory has a DNGVersion entry.
func (c *Container) IsDNG() bool {
	if len(c.Directories) == 0 {
		return false
	}
	_, ok := c.Directories[0].Fields[DNGVersion]
	return ok
}

// Decode reads the IFD chain of a TIFF file from r.
// A reader that cannot seek is read in memory first.
func Decode(r io.Reader, opts ...Option) (*Container, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "could not read data")
		}
		rs = bytes.NewReader(data)
	}

	tr, err := NewReader(rs, opts...)
	if err != nil {
		return nil, err
	}
	dirs, err := tr.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Container{
		Order:       tr.order,
		Directories: dirs,
	}, nil
}

func (c *Container) String() string {
	buf := bytes.NewBufferString("")
	if c.IsDNG() {
		buf.WriteString("== DNG ==\n")
	} else {
		buf.WriteString("== TIFF ==\n")
	}
	buf.WriteString(fmt.Sprintf("ByteOrder: %v\n", c.Order))
	for i, d := range c.Directories {
		buf.WriteString(fmt.Sprintf("IFD #%d at offset %d: %d entries\n", i, d.Offset, len(d.Fields)))
	}
	return buf.String()
}
