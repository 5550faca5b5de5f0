package tiffdir

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// A FormatError reports that the input violates the TIFF structure.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("tiffdir: invalid format: %s", string(e))
}

func formatErrorf(format string, args ...interface{}) error {
	return FormatError(fmt.Sprintf(format, args...))
}

// A TruncationError reports that the input ended before a structure
// it promises could be read.
type TruncationError struct {
	Offset int64 // Where the short read started.
	Want   int   // Number of bytes expected.
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("tiffdir: truncated input: want %d bytes at offset %d", e.Want, e.Offset)
}

// Unwrap allows errors.Is(err, io.ErrUnexpectedEOF).
func (e *TruncationError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// An UnsupportedError reports that the input uses a valid but
// unimplemented feature.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("tiffdir: unsupported feature: %s", string(e))
}

// IsFormat reports whether err is, or wraps, a FormatError.
func IsFormat(err error) bool {
	var target FormatError
	return errors.As(err, &target)
}

// IsTruncated reports whether err is, or wraps, a TruncationError.
func IsTruncated(err error) bool {
	var target *TruncationError
	return errors.As(err, &target)
}
