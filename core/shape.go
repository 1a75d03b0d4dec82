// SPDX-License-Identifier: MIT

// Package core: row-major shape and stride arithmetic.
// These helpers are the single source of truth for flat-index math;
// dense containers, adapters and the view stride cache all delegate
// here so the three never disagree on geometry.
package core

// RowMajorStrides computes canonical row-major (C-order) strides for
// the given shape: the last axis has stride 1, each earlier axis the
// product of the extents after it.
// Complexity: O(rank).
func RowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	// Walk axes from innermost to outermost, accumulating the product.
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	return strides
}

// ShapeSize returns the total element count for a shape: the product
// of its extents, 1 for the empty (rank-0) shape, 0 if any extent is 0.
// Complexity: O(rank).
func ShapeSize(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}

	return size
}

// SameShape reports whether two shapes are identical rank and extents.
// Complexity: O(rank).
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for d := range a {
		if a[d] != b[d] {
			return false
		}
	}

	return true
}

// IsRowMajor reports whether the given geometry is canonical row-major
// storage with base offset zero. Used by Layout classification only;
// callers must not infer contiguity guarantees from it for views.
// Complexity: O(rank).
func IsRowMajor(shape, strides []int, offset int) bool {
	if offset != 0 || len(shape) != len(strides) {
		return false
	}
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		if strides[d] != acc {
			return false
		}
		acc *= shape[d]
	}

	return true
}

// FlatIndex maps a coordinate tuple into a flat-storage position.
// index may be shorter than the shape: missing trailing coordinates
// default to 0. It reports ok=false when index is longer than the
// shape or any coordinate falls outside [0, extent).
// Complexity: O(rank).
func FlatIndex(index, shape, strides []int, offset int) (int, bool) {
	if len(index) > len(shape) {
		return 0, false
	}
	pos := offset
	for d, c := range index {
		if c < 0 || c >= shape[d] {
			return 0, false
		}
		pos += c * strides[d]
	}

	return pos, true
}

// EndPosition returns the flat position of the one-past-last cursor
// state for the given geometry: one inner-axis step beyond the element
// whose every coordinate is extent-1. For canonical row-major storage
// this equals offset + ShapeSize(shape).
// Complexity: O(rank).
func EndPosition(shape, strides []int, offset int) int {
	if len(shape) == 0 {
		// A rank-0 expression holds exactly one element.
		return offset + 1
	}
	pos := offset
	for d := range shape {
		pos += (shape[d] - 1) * strides[d]
	}

	return pos + strides[len(strides)-1]
}
