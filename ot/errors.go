package ot

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedDirection is returned (wrapped) by ParseDirection for input it cannot map
// to a direction.
var ErrUnrecognizedDirection = errors.New("unrecognized direction")

// FontError represents an error concerning a single table of a font, found while
// reading the font's binary data.
type FontError struct {
	Table  Tag    // The OpenType table where the error occurred (e.g., "GSUB", "GPOS")
	Issue  string // Human-readable description of the issue
	Offset uint32 // Byte offset in the font file where the error occurred (0 if unknown)
	Err    error  // Underlying error, if any
}

// Error implements the error interface.
func (e *FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] at offset %d: %s", e.Table.Describe(), e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s", e.Table.Describe(), e.Issue)
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error {
	return e.Err
}
