// SPDX-License-Identifier: MIT

// Package view: the Stepper, a traversal cursor over a view.
// A Stepper owns no data: it is a pure coordinate-translation layer
// around one cursor of the underlying expression. Every operation
// rescales a view-space axis and magnitude into underlying-space and
// delegates; dereferencing yields exactly what the underlying cursor
// points at.
//
// The dimension offset makes a view transparent inside a higher-rank
// broadcast: a consumer iterating a shape with extra leading axes
// steps ALL its operands with the same global axis numbers, and the
// leading axes that do not belong to this view must be no-ops.
package view

import (
	"fmt"

	"github.com/avr914/xtensor/core"
)

// Stepper walks a View axis-by-axis. Create one per traversal via
// StepperBegin/StepperEnd (or their broadcast-aware For variants) and
// discard it afterwards. Steppers of the same view share no mutable
// state; concurrent traversals are safe whenever the underlying read
// path is.
//
// Stepper implements core.Stepper, so a view can serve as the
// underlying expression of a further view.
type Stepper struct {
	v   *View
	sub core.Stepper // the underlying expression's own cursor
	off int          // leading broadcast axes outside the view's rank
}

// StepperBegin returns a cursor anchored on the first element the view
// logically sees. Implements core.Expression.
func (v *View) StepperBegin() core.Stepper { return v.stepperBegin(0) }

// StepperEnd returns a cursor in the view-consistent one-past-last
// state. Implements core.Expression.
func (v *View) StepperEnd() core.Stepper { return v.stepperEnd(0) }

// StepperBeginFor returns a begin cursor for use inside a broadcast
// iteration of the given shape; the extra leading axes of that shape
// become transparent no-ops. Fails with ErrShapeMismatch when the
// iteration shape has fewer axes than the view.
func (v *View) StepperBeginFor(iterShape []int) (*Stepper, error) {
	if len(iterShape) < len(v.shape) {
		return nil, fmt.Errorf("view: iteration shape %v for rank %d: %w",
			iterShape, len(v.shape), ErrShapeMismatch)
	}

	return v.stepperBegin(len(iterShape) - len(v.shape)), nil
}

// StepperEndFor is the end-state counterpart of StepperBeginFor.
func (v *View) StepperEndFor(iterShape []int) (*Stepper, error) {
	if len(iterShape) < len(v.shape) {
		return nil, fmt.Errorf("view: iteration shape %v for rank %d: %w",
			iterShape, len(v.shape), ErrShapeMismatch)
	}

	return v.stepperEnd(len(iterShape) - len(v.shape)), nil
}

func (v *View) stepperBegin(off int) *Stepper {
	s := &Stepper{v: v, sub: v.e.StepperBegin(), off: off}
	s.anchor()

	return s
}

func (v *View) stepperEnd(off int) *Stepper {
	s := &Stepper{v: v, sub: v.e.StepperEnd(), off: off}
	s.settleEnd()

	return s
}

// anchor advances the freshly-begun underlying cursor onto the first
// element the view sees: for every slice position that consumes an
// axis, step that axis forward by the slice's first coordinate.
func (s *Stepper) anchor() {
	sl := s.v.slices
	for p := range sl {
		if isNewAxisAt(sl, p) {
			continue
		}
		s.sub.Step(p-newaxisCountBefore(sl, p), sl[p].Value(0))
	}
}

// settleEnd retreats the underlying end cursor into the one-past-end
// state consistent with the view's extents: on every consumed axis the
// gap between the axis' last coordinate and the last coordinate the
// view visits is stepped back.
func (s *Stepper) settleEnd() {
	sl := s.v.slices
	for p := range sl {
		if isNewAxisAt(sl, p) {
			continue
		}
		axis := p - newaxisCountBefore(sl, p)
		last := sl[p].Value(sl[p].Size() - 1)
		s.sub.StepBack(axis, s.v.UnderlyingSize(axis)-1-last)
	}
}

// Step advances n positions along view axis dim (broadcast numbering
// when the stepper carries a dimension offset).
func (s *Stepper) Step(dim, n int) { s.commonStep(dim, n, s.sub.Step) }

// StepBack retreats n positions along view axis dim.
func (s *Stepper) StepBack(dim, n int) { s.commonStep(dim, n, s.sub.StepBack) }

// commonStep implements the shared translation of Step and StepBack:
// outer broadcast axes and new-axis slots are no-ops; everything else
// delegates a step of magnitude step-size × n on the mapped underlying
// axis.
func (s *Stepper) commonStep(dim, n int, f func(axis, n int)) {
	if dim < s.off {
		return // outer broadcast axis, irrelevant to this view
	}
	sl := s.v.slices
	p := integralSkip(sl, dim-s.off)
	if isNewAxisAt(sl, p) {
		return // a unit axis never moves the underlying cursor
	}
	mult := 1
	if p < len(sl) {
		mult = sl[p].StepSize()
	}
	f(p-newaxisCountBefore(sl, p), mult*n)
}

// Reset undoes a full forward sweep of view axis dim: it delegates a
// backward step of magnitude step-size × (extent−1), returning the
// axis to its first position after an outer loop finished walking it.
func (s *Stepper) Reset(dim int) { s.commonReset(dim, s.sub.StepBack) }

// ResetBack is the symmetric counterpart used when an outer loop wraps
// from the end state back toward begin on an inner axis: a forward
// step of the same magnitude.
func (s *Stepper) ResetBack(dim int) { s.commonReset(dim, s.sub.Step) }

func (s *Stepper) commonReset(dim int, f func(axis, n int)) {
	if dim < s.off {
		return
	}
	sl := s.v.slices
	k := dim - s.off
	p := integralSkip(sl, k)
	if isNewAxisAt(sl, p) {
		return
	}
	extent := 0
	mult := 1
	if p < len(sl) {
		extent = sl[p].Size()
		mult = sl[p].StepSize()
	} else {
		extent = s.v.shape[k]
	}
	if extent != 0 {
		extent--
	}
	f(p-newaxisCountBefore(sl, p), mult*extent)
}

// ToBegin rewinds to the view's first element: the underlying cursor
// returns to its own begin state and the anchor adjustment is
// reapplied.
func (s *Stepper) ToBegin() {
	s.sub.ToBegin()
	s.anchor()
}

// ToEnd places the cursor in the view-consistent one-past-last state.
func (s *Stepper) ToEnd() {
	s.sub.ToEnd()
	s.settleEnd()
}

// Value reads the element under the cursor; the Stepper stores no
// value of its own.
func (s *Stepper) Value() float64 { return s.sub.Value() }

// SetValue writes the element under the cursor into the underlying
// storage.
func (s *Stepper) SetValue(val float64) { s.sub.SetValue(val) }
