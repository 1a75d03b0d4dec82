// SPDX-License-Identifier: MIT

// Package xslice: Bound, the resolved form of a Slice.
// Bound is what view algorithms consume. Its contract:
//
//	Size()     — elements contributed to the view axis; 0 for an
//	             integral slice, which consumes an axis without
//	             producing one.
//	StepSize() — stride multiplier within the underlying axis.
//	Value(i)   — underlying coordinate for view position i; for an
//	             integral slice the pinned constant, whatever i is.
//
// All coordinates in a Bound are non-negative and final; binding is
// where python-style negative indices and clamping are resolved.
package xslice

import "fmt"

// Bound is a slice resolved against a concrete axis extent.
// Immutable after construction.
type Bound struct {
	kind  Kind
	start int // first underlying coordinate (pinned coordinate for At)
	step  int // underlying stride multiplier
	size  int // extent contributed to the view axis
}

// Bind resolves the slice against the extent of the underlying axis it
// addresses. NewAxis binds against no axis; callers pass the extent 1
// by convention (the value is ignored).
// Stage 1 (Validate): extent sign, step ≠ 0, integral coordinate range.
// Stage 2 (Resolve): negative coordinates, clamping, element count.
// Complexity: O(1).
func (s Slice) Bind(extent int) (Bound, error) {
	if extent < 0 {
		return Bound{}, fmt.Errorf("xslice: bind %v to extent %d: %w", s, extent, ErrBadExtent)
	}
	switch s.kind {
	case KindAll:
		return Bound{kind: KindAll, start: 0, step: 1, size: extent}, nil

	case KindNewAxis:
		return Bound{kind: KindNewAxis, start: 0, step: 0, size: 1}, nil

	case KindIndex:
		i := s.start
		if i < 0 {
			i += extent
		}
		if i < 0 || i >= extent {
			return Bound{}, fmt.Errorf("xslice: bind %v to extent %d: %w", s, extent, ErrOutOfRange)
		}

		return Bound{kind: KindIndex, start: i, step: 1, size: 0}, nil

	case KindRange:
		if s.step == 0 {
			return Bound{}, fmt.Errorf("xslice: bind %v: %w", s, ErrZeroStep)
		}

		return bindRange(s.start, s.stop, s.step, extent), nil

	default:
		return Bound{}, fmt.Errorf("xslice: bind to extent %d: %w", extent, ErrEllipsisUnbindable)
	}
}

// bindRange resolves a range slice python-style: negative bounds count
// from the end, then both are clamped to the addressable window for
// the sign of the step, and the element count is the ceiling of the
// remaining span over |step|.
func bindRange(start, stop, step, extent int) Bound {
	if start < 0 {
		start += extent
	}
	if stop < 0 {
		stop += extent
	}
	if step > 0 {
		start = clamp(start, 0, extent)
		stop = clamp(stop, 0, extent)
		size := 0
		if stop > start {
			size = (stop - start + step - 1) / step
		}

		return Bound{kind: KindRange, start: start, step: step, size: size}
	}
	// Backward walk: start may sit on the last element, stop may sit one
	// before the first (-1) to include coordinate 0.
	start = clamp(start, 0, extent-1)
	stop = clamp(stop, -1, extent-1)
	size := 0
	if start > stop {
		down := -step
		size = (start - stop + down - 1) / down
	}

	return Bound{kind: KindRange, start: start, step: step, size: size}
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Kind returns the variant tag carried over from the Slice.
func (b Bound) Kind() Kind { return b.kind }

// Size returns the element count the slice contributes to its view
// axis: the window length for Range/All, 1 for NewAxis, and 0 for an
// integral slice (it removes an axis rather than contributing one).
func (b Bound) Size() int { return b.size }

// StepSize returns the stride multiplier within the underlying axis:
// the range step for Range, 1 for All and integral slices, 0 for
// NewAxis (a unit axis never moves the underlying position).
func (b Bound) StepSize() int { return b.step }

// Value returns the underlying coordinate for view position i along
// this slice's axis. Integral slices return the pinned coordinate for
// every i; NewAxis maps to no underlying coordinate and returns 0.
func (b Bound) Value(i int) int {
	switch b.kind {
	case KindIndex:
		return b.start
	case KindNewAxis:
		return 0
	default:
		return b.start + i*b.step
	}
}
