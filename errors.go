package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a BitArray is constructed with a negative size.
	ErrInvalidSize = errors.New("invalid size")

	// ErrOutOfRange matches every *OutOfRangeError via errors.Is.
	ErrOutOfRange = errors.New("position out of range")
)

// OutOfRangeError indicates a Get or Set outside [0, Size).
//
// Reads and writes report the same error shape.
type OutOfRangeError struct {
	Size     int
	Position int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Given position: %d is out of the bitarray size %d.", e.Position, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
