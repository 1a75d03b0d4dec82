// SPDX-License-Identifier: MIT

// Package dense: the Dense container.
// Dense embeds core.Strided, so element access, stepping and the
// direct-buffer surface are the shared core implementations; this file
// adds construction, the checked At/Set convenience pair, Fill and
// deep cloning.
package dense

import (
	"fmt"

	"github.com/avr914/xtensor/core"
)

// Dense is an n-dimensional row-major float64 array.
// The zero value is not usable; construct through New or FromSlice.
type Dense struct {
	core.Strided
}

// New creates a zero-initialized Dense of the given shape.
// Stage 1 (Validate): every extent must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): bind canonical row-major geometry.
// Complexity: O(size) time and memory.
func New(shape ...int) (*Dense, error) {
	for d, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("dense: New axis %d extent %d: %w", d, n, ErrBadShape)
		}
	}
	data := make([]float64, core.ShapeSize(shape))

	return wrap(data, shape)
}

// FromSlice binds existing data to the given shape WITHOUT copying:
// the Dense aliases data, and writes through either are visible to
// both. len(data) must equal the product of the extents.
// Complexity: O(rank).
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	for d, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("dense: FromSlice axis %d extent %d: %w", d, n, ErrBadShape)
		}
	}
	if len(data) != core.ShapeSize(shape) {
		return nil, fmt.Errorf("dense: FromSlice %d elements for shape %v: %w",
			len(data), shape, ErrBadData)
	}

	return wrap(data, shape)
}

// wrap binds data to canonical row-major geometry. Shape is copied so
// later caller mutations cannot skew the container.
func wrap(data []float64, shape []int) (*Dense, error) {
	own := make([]int, len(shape))
	copy(own, shape)
	s, err := core.NewStrided(data, own, core.RowMajorStrides(own), 0)
	if err != nil {
		return nil, err // unreachable for validated input; propagate unchanged
	}

	return &Dense{Strided: *s}, nil
}

// At reads the element at the given coordinates. Missing trailing
// coordinates default to 0; out-of-bounds coordinates return
// core.ErrOutOfRange.
// Complexity: O(rank).
func (d *Dense) At(coords ...int) (float64, error) {
	return d.Element(coords)
}

// Set writes v at the given coordinates, with the same rules as At.
// Complexity: O(rank).
func (d *Dense) Set(v float64, coords ...int) error {
	return d.SetElement(v, coords)
}

// Fill assigns v to every element.
// Complexity: O(size).
func (d *Dense) Fill(v float64) {
	data := d.Data()
	for i := range data {
		data[i] = v
	}
}

// Clone returns a deep copy with private backing storage.
// Complexity: O(size).
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.Data()))
	copy(data, d.Data())
	nd, err := FromSlice(data, d.Shape()...)
	if err != nil {
		// A valid Dense always round-trips through FromSlice.
		panic(fmt.Sprintf("dense: Clone: %v", err))
	}

	return nd
}

// CloneExpression implements core.Cloneable.
func (d *Dense) CloneExpression() core.Expression {
	return d.Clone()
}
