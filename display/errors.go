package display

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization is returned by New when the window cannot be acquired.
	ErrInitialization = errors.New("display: initialization failed")

	// ErrOutOfBounds matches every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("display: coordinates out of bounds")

	// ErrClosed is returned by every operation on a closed surface.
	ErrClosed = errors.New("display: surface closed")
)

// OutOfBoundsError reports a single-pixel access outside the surface.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("display: pixel (%d, %d) outside %dx%d surface", e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
