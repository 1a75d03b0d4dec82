// SPDX-License-Identifier: MIT

// Package view: the stride cache.
// Strides are only meaningful when the underlying expression exposes
// the direct-buffer capability; they are a pure function of immutable
// construction state, computed at most once and memoized. A view axis
// of extent 1 always reports stride 0: a degenerate unit axis must
// never move the underlying pointer, which keeps broadcast consumers
// correct whatever the raw multiplication would have produced.
package view

import (
	"fmt"

	"github.com/avr914/xtensor/core"
	"github.com/avr914/xtensor/xslice"
)

// Strides returns the view's per-axis flat-storage deltas over the
// underlying buffer. Fails with ErrNoBuffer when the underlying
// expression is not core.Buffered. The returned slice is the cache
// itself: read-only for callers.
// Complexity: O(rank·len(slices)) on first use, O(1) after.
func (v *View) Strides() ([]int, error) {
	if err := v.materializeStrides(); err != nil {
		return nil, err
	}

	return v.strides, nil
}

// Offset returns the flat position of the view's all-zero coordinate
// in the underlying buffer. Same availability rules as Strides.
func (v *View) Offset() (int, error) {
	if err := v.materializeStrides(); err != nil {
		return 0, err
	}

	return v.offset, nil
}

// Data returns the underlying flat buffer itself. The slice aliases
// the viewed storage; writes through it are writes to the original.
func (v *View) Data() ([]float64, error) {
	b, ok := v.e.(core.Buffered)
	if !ok {
		return nil, fmt.Errorf("view: Data of %T: %w", v.e, ErrNoBuffer)
	}

	return b.Data(), nil
}

// materializeStrides fills the cache exactly once. Concurrent first
// uses are serialized; recomputation would be idempotent anyway since
// the inputs are immutable after construction.
func (v *View) materializeStrides() error {
	v.strideOnce.Do(func() {
		v.strides, v.offset, v.strideErr = v.computeStrides()
	})

	return v.strideErr
}

// computeStrides derives per-axis strides and the base offset.
// stride[i] = slice step size × underlying stride of the mapped axis,
// or the underlying stride alone for trailing axes; the unit-axis
// override zeroes any axis of extent 1 (new-axis slots included, which
// is also what keeps them from addressing a nonexistent underlying
// axis). The offset accumulates each slice's first coordinate scaled
// by the stride of the axis it consumes.
func (v *View) computeStrides() ([]int, int, error) {
	b, ok := v.e.(core.Buffered)
	if !ok {
		return nil, 0, fmt.Errorf("view: strides of %T: %w", v.e, ErrNoBuffer)
	}
	under := b.Strides()
	sl := v.slices

	strides := make([]int, len(v.shape))
	for i := range strides {
		if v.shape[i] == 1 {
			strides[i] = 0
			continue
		}
		p := integralSkip(sl, i)
		if p < len(sl) {
			strides[i] = sl[p].StepSize() * under[p-newaxisCountBefore(sl, p)]
			continue
		}
		strides[i] = under[p-newaxisCountBefore(sl, p)]
	}

	offset := b.Offset()
	for p := range sl {
		if sl[p].Kind() == xslice.KindNewAxis {
			continue
		}
		offset += sl[p].Value(0) * under[p-newaxisCountBefore(sl, p)]
	}

	return strides, offset, nil
}
