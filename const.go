package tiffdir

// A TIFF file starts with an 8-byte header followed, somewhere in the
// file, by a chain of Image File Directories (IFD). Each IFD holds
// entries of 12 bytes each, described on page 14-16 of TIFF 6.0.
// An IFD entry consists of
//
//  - a tag, which describes the signification of the entry,
//  - the data type and count of the entry,
//  - the data itself or a pointer to it if it is more than 4 bytes.
//
// The presence of a count means that each entry is effectively an array.

const (
	leMarker = "II" // Byte order marker of little-endian files.
	beMarker = "MM" // Byte order marker of big-endian files.

	version   = 42 // Identifies the file as a TIFF file.
	headerLen = 8  // Byte order (2) + version (2) + first IFD offset (4).

	countLen  = 2  // Length of the IFD entry count.
	entryLen  = 12 // Length of an IFD entry in bytes.
	offsetLen = 4  // Length of an on-disk offset, including the next IFD offset.
)

// Data types (p. 14-16 of TIFF 6.0).
const (
	TypeUnknown FieldType = iota // Reserved, never a legitimate field.
	TypeByte
	TypeASCII
	TypeShort
	TypeLong
	TypeRational
	TypeSByte
	TypeUndefined
	TypeSShort
	TypeSLong
	TypeSRational
	TypeFloat
	TypeDouble

	// TypeUnexpected stands for any type code greater than TypeDouble.
	TypeUnexpected FieldType = 0xFFFF
)

// The length of one instance of each data type in bytes.
var widths = [...]uint32{0, 1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}

// NewSubFileType value of the primary (highest-resolution) image (DNG 1.4.0.0, p. 18).
const sftPrimaryImage = 0

const (
	maxChunkSize = 10 << 20 // 10M

	defaultMaxValueSize   = 64 << 20 // 64M
	defaultMaxDirectories = 4096
)
