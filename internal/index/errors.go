package index

import (
	"errors"
	"fmt"
)

// Persistence errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported index format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: index file may be corrupted")
	ErrPayloadTooLarge    = errors.New("index payload exceeds maximum size")
)

// OutOfRangeError reports a symbol index outside the valid range of a
// vocabulary.
type OutOfRangeError struct {
	Index int32 // requested index
	Size  int   // number of symbols in the vocabulary
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("symbol index %d out of range [0, %d)", e.Index, e.Size)
}
