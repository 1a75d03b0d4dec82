package xslice

import "errors"

var (
	// ErrZeroStep indicates a range slice constructed with step 0.
	ErrZeroStep = errors.New("xslice: range step must be non-zero")

	// ErrOutOfRange indicates an integral slice whose coordinate falls
	// outside the axis it is bound to.
	ErrOutOfRange = errors.New("xslice: integral index out of range")

	// ErrBadExtent indicates a bind against a negative axis extent.
	ErrBadExtent = errors.New("xslice: axis extent must be non-negative")

	// ErrEllipsisUnbindable indicates an attempt to bind the ellipsis
	// wildcard; ellipsis exists only to be rejected by view construction.
	ErrEllipsisUnbindable = errors.New("xslice: ellipsis slice cannot be bound to an axis")
)
