package ndarr

import "errors"

var (
	// ErrShape indicates an invalid shape (negative dimension) or a data
	// slice whose length does not match the requested shape.
	ErrShape = errors.New("ndarr: invalid shape")

	// ErrRagged indicates that the rows of a 2-D literal have differing lengths.
	ErrRagged = errors.New("ndarr: all rows must have the same length")

	// ErrAxisRange indicates an axis outside [-ndim, ndim).
	ErrAxisRange = errors.New("ndarr: axis out of range")

	// ErrIndexRange indicates an element index outside the array bounds.
	ErrIndexRange = errors.New("ndarr: index out of range")

	// ErrShapeMismatch indicates two arrays whose shapes were required to be
	// equal but are not.
	ErrShapeMismatch = errors.New("ndarr: shape mismatch")

	// ErrNotScalar indicates that a scalar read was attempted on an array
	// holding more than one element.
	ErrNotScalar = errors.New("ndarr: array is not a scalar")
)
