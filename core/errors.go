package core

import "errors"

var (
	// ErrBadGeometry indicates an inconsistent shape/strides/offset/data
	// combination passed to NewStrided.
	ErrBadGeometry = errors.New("core: inconsistent strided geometry")

	// ErrOutOfRange indicates a coordinate tuple outside the expression's
	// shape (too many coordinates, or a coordinate beyond its extent).
	ErrOutOfRange = errors.New("core: index out of range")
)
