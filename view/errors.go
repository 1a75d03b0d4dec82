// SPDX-License-Identifier: MIT
// Package view: sentinel error set.
// All view algorithms return these sentinels (possibly wrapped with
// context via %w) and tests match them with errors.Is. Errors coming
// out of the underlying expression propagate unchanged.

package view

import "errors"

var (
	// ErrNilExpression indicates a nil underlying expression or a nil
	// assignment source.
	ErrNilExpression = errors.New("view: expression is nil")

	// ErrEllipsisUnsupported indicates an xslice.Ellipsis in the slice
	// list. This is a static precondition failure, not a recoverable
	// runtime condition: no view algorithm supports open-ended matching
	// of remaining axes.
	ErrEllipsisUnsupported = errors.New("view: ellipsis slice is not supported")

	// ErrTooManySlices indicates a slice list that consumes more axes
	// than the underlying expression has.
	ErrTooManySlices = errors.New("view: slice list consumes more axes than the expression has")

	// ErrOutOfRange indicates a checked access whose coordinate count
	// exceeds the view's rank or whose coordinate exceeds its extent.
	ErrOutOfRange = errors.New("view: index out of range")

	// ErrNoBuffer indicates a stride-cache request against an underlying
	// expression without the direct-buffer capability.
	ErrNoBuffer = errors.New("view: underlying expression exposes no direct buffer")

	// ErrShapeMismatch indicates an elementwise assignment whose source
	// shape differs from the view's, or a broadcast iteration shape with
	// fewer axes than the view has.
	ErrShapeMismatch = errors.New("view: shape mismatch")

	// ErrNotCloneable indicates WithOwned against an expression that
	// does not implement core.Cloneable.
	ErrNotCloneable = errors.New("view: expression cannot be cloned for ownership")
)
