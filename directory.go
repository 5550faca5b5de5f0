package tiffdir

import (
	"sort"

	"github.com/pkg/errors"
)

// Directory is a decoded Image File Directory (IFD).
type Directory struct {
	Offset  int64 // Where the IFD starts in the file.
	Fields  map[Tag]Entry
	Next    int64 // Offset of the next IFD in the chain, 0 if none.
	Skipped int   // Declared entries left undecoded after an unexpected type.
}

// Get returns the entry with the given tag.
func (d *Directory) Get(tag Tag) (Entry, bool) {
	e, ok := d.Fields[tag]
	return e, ok
}

// Tags returns the tags of the directory in ascending order.
func (d *Directory) Tags() []Tag {
	tags := make([]Tag, 0, len(d.Fields))
	for t := range d.Fields {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// firstVal returns the first unsigned value of the entry with the given tag.
func (d *Directory) firstVal(tag Tag) (uint64, bool) {
	e, ok := d.Fields[tag]
	if !ok {
		return 0, false
	}
	u, err := e.Uints()
	if err != nil {
		return 0, false
	}
	return u[0], true
}

// ReadDirectory reads the IFD starting at offset.
// It does not follow the next IFD offset.
func (r *Reader) ReadDirectory(offset int64) (*Directory, error) {
	if offset < headerLen {
		return nil, formatErrorf("IFD offset %d points inside the header", offset)
	}
	if offset%2 != 0 {
		return nil, formatErrorf("IFD offset %d is not on a word boundary", offset)
	}
	if err := r.seek(offset); err != nil {
		return nil, err
	}

	// The first two bytes contain the number of entries (12 bytes each).
	n, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, formatErrorf("IFD at offset %d has no entries", offset)
	}

	d := &Directory{
		Offset: offset,
		Fields: make(map[Tag]Entry, n),
	}
	for i := 0; i < int(n); i++ {
		e, ok, err := r.decodeEntry()
		if err != nil {
			return nil, errors.WithMessagef(err, "IFD at offset %d, entry #%d", offset, i)
		}
		if !ok {
			d.Skipped = int(n) - i
			break
		}
		d.Fields[e.Tag] = e // Last one wins.
	}

	// The next IFD offset follows the declared entries, wherever decoding stopped.
	if err = r.seek(offset + countLen + int64(n)*entryLen); err != nil {
		return nil, err
	}
	if d.Next, err = r.readOffset("next IFD", true); err != nil {
		return nil, errors.WithMessagef(err, "IFD at offset %d", offset)
	}
	return d, nil
}
