package dense

import "errors"

var (
	// ErrBadShape indicates a requested shape with a non-positive extent.
	ErrBadShape = errors.New("dense: extents must be > 0")

	// ErrBadData indicates backing data whose length does not match the
	// requested shape.
	ErrBadData = errors.New("dense: data length does not match shape")
)
