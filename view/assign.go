// SPDX-License-Identifier: MIT

// Package view: assignment through a view.
// Both operations traverse via steppers, so writes land at exactly the
// positions the stepper protocol visits — the same positions element
// access maps to. Broadcasting during assignment is out of scope here;
// Assign requires an exact shape match.
package view

import (
	"fmt"

	"github.com/avr914/xtensor/core"
)

// Fill assigns value to every position the view presents, mutating the
// aliased region of the underlying storage.
// Complexity: O(view size · rank).
func (v *View) Fill(value float64) {
	c := v.StepperBegin()
	walk(v.shape, func() { c.SetValue(value) }, c)
}

// Assign copies src into the view elementwise. Shapes must match
// exactly; fails with ErrShapeMismatch otherwise. src may be any
// expression, another view included.
// Complexity: O(view size · rank).
func (v *View) Assign(src core.Expression) error {
	if src == nil {
		return fmt.Errorf("view: Assign: %w", ErrNilExpression)
	}
	if !core.SameShape(v.shape, src.Shape()) {
		return fmt.Errorf("view: Assign %v into %v: %w", src.Shape(), v.shape, ErrShapeMismatch)
	}
	dst, from := v.StepperBegin(), src.StepperBegin()
	walk(v.shape, func() { dst.SetValue(from.Value()) }, dst, from)

	return nil
}

// walk drives the given cursors in row-major lockstep over shape,
// invoking visit at every position. Wrapping an exhausted axis steps
// back extent−1 positions, the stepper-protocol equivalent of a reset.
func walk(shape []int, visit func(), cursors ...core.Stepper) {
	if core.ShapeSize(shape) == 0 {
		return
	}
	idx := make([]int, len(shape))
	for {
		visit()
		d := len(shape) - 1
		for ; d >= 0; d-- {
			if idx[d]+1 < shape[d] {
				idx[d]++
				for _, c := range cursors {
					c.Step(d, 1)
				}
				break
			}
			idx[d] = 0
			for _, c := range cursors {
				c.StepBack(d, shape[d]-1)
			}
		}
		if d < 0 {
			return
		}
	}
}
