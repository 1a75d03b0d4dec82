// SPDX-License-Identifier: MIT

// Package core: Strided, the canonical Buffered expression.
// Strided binds a flat float64 slice to an explicit geometry (shape,
// per-axis strides, base offset) WITHOUT owning or copying it: writes
// through a Strided mutate whatever storage the slice aliases. The
// dense container and the third-party adapters embed it so that all of
// them share one implementation of element access and stepping.
package core

import "fmt"

// Strided is a non-owning strided window over a flat float64 buffer.
// The zero value is not usable; construct through NewStrided.
type Strided struct {
	data    []float64 // aliased backing storage, never copied
	shape   []int     // per-axis extents, immutable after construction
	strides []int     // per-axis flat deltas, immutable after construction
	offset  int       // flat position of the all-zero coordinate
	layout  Layout    // classification, fixed at construction
}

// NewStrided binds data to the given geometry.
// Stage 1 (Validate): rank agreement, non-negative extents and offset,
// and that the all-max coordinate addresses a position inside data.
// Stage 2 (Finalize): classify the layout and return the handle.
// Complexity: O(rank); no allocation beyond the returned struct.
func NewStrided(data []float64, shape, strides []int, offset int) (*Strided, error) {
	// Validate rank agreement between shape and strides.
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("core: NewStrided: %d extents vs %d strides: %w",
			len(shape), len(strides), ErrBadGeometry)
	}
	if offset < 0 {
		return nil, fmt.Errorf("core: NewStrided: negative offset %d: %w", offset, ErrBadGeometry)
	}
	size := 1
	last := offset
	for d, n := range shape {
		if n < 0 || strides[d] < 0 {
			return nil, fmt.Errorf("core: NewStrided: negative extent or stride at axis %d: %w",
				d, ErrBadGeometry)
		}
		size *= n
		last += (n - 1) * strides[d]
	}
	// The all-max coordinate of a non-empty window must be addressable.
	if size > 0 && last >= len(data) {
		return nil, fmt.Errorf("core: NewStrided: geometry exceeds %d-element buffer: %w",
			len(data), ErrBadGeometry)
	}

	return &Strided{
		data:    data,
		shape:   shape,
		strides: strides,
		offset:  offset,
		layout:  classify(shape, strides, offset),
	}, nil
}

// classify maps a geometry to its Layout.
func classify(shape, strides []int, offset int) Layout {
	if IsRowMajor(shape, strides, offset) {
		return LayoutRowMajor
	}

	return LayoutDynamic
}

// Shape returns the per-axis extents. Read-only for callers.
func (s *Strided) Shape() []int { return s.shape }

// Rank returns the number of axes.
func (s *Strided) Rank() int { return len(s.shape) }

// Size returns the total element count.
func (s *Strided) Size() int { return ShapeSize(s.shape) }

// Layout reports the layout classification fixed at construction.
func (s *Strided) Layout() Layout { return s.layout }

// Data returns the aliased flat backing slice.
func (s *Strided) Data() []float64 { return s.data }

// Strides returns the per-axis flat deltas. Read-only for callers.
func (s *Strided) Strides() []int { return s.strides }

// Offset returns the flat position of the all-zero coordinate.
func (s *Strided) Offset() int { return s.offset }

// Element reads the element at index. Missing trailing coordinates
// default to 0; an over-long or out-of-bounds index is ErrOutOfRange.
// Complexity: O(rank).
func (s *Strided) Element(index []int) (float64, error) {
	pos, ok := FlatIndex(index, s.shape, s.strides, s.offset)
	if !ok {
		return 0, fmt.Errorf("core: element at %v of shape %v: %w", index, s.shape, ErrOutOfRange)
	}

	return s.data[pos], nil
}

// SetElement writes v at index, with the same index rules as Element.
// Complexity: O(rank).
func (s *Strided) SetElement(v float64, index []int) error {
	pos, ok := FlatIndex(index, s.shape, s.strides, s.offset)
	if !ok {
		return fmt.Errorf("core: element at %v of shape %v: %w", index, s.shape, ErrOutOfRange)
	}
	s.data[pos] = v

	return nil
}

// StepperBegin returns a cursor anchored on the all-zero coordinate.
func (s *Strided) StepperBegin() Stepper {
	return &StridedStepper{src: s, pos: s.offset}
}

// StepperEnd returns a cursor in the one-past-last state.
func (s *Strided) StepperEnd() Stepper {
	return &StridedStepper{src: s, pos: EndPosition(s.shape, s.strides, s.offset)}
}
