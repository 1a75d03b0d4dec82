// SPDX-License-Identifier: MIT

// Package core: StridedStepper, the cursor for Strided expressions.
// The whole cursor state is one flat position; stepping along an axis
// is a single multiply-add against that axis' stride. View steppers
// stack on top of this by rescaling axis and magnitude before
// delegating here.
package core

// StridedStepper walks a Strided expression one axis at a time.
// Steppers are cheap value-like objects; create one per traversal and
// discard it afterwards. Two steppers over the same Strided share no
// mutable state.
type StridedStepper struct {
	src *Strided
	pos int // flat position in src.data
}

// Step advances the cursor n positions along axis. Negative n steps
// backward. Axis must be a valid axis of the source expression;
// passing anything else is a programmer error and panics.
func (st *StridedStepper) Step(axis, n int) {
	st.pos += n * st.src.strides[axis]
}

// StepBack retreats the cursor n positions along axis.
func (st *StridedStepper) StepBack(axis, n int) {
	st.pos -= n * st.src.strides[axis]
}

// ToBegin rewinds to the all-zero coordinate.
func (st *StridedStepper) ToBegin() {
	st.pos = st.src.offset
}

// ToEnd places the cursor one inner-axis step past the last element.
func (st *StridedStepper) ToEnd() {
	st.pos = EndPosition(st.src.shape, st.src.strides, st.src.offset)
}

// Value reads the element under the cursor. Undefined in the end state.
func (st *StridedStepper) Value() float64 {
	return st.src.data[st.pos]
}

// SetValue writes the element under the cursor.
func (st *StridedStepper) SetValue(v float64) {
	st.src.data[st.pos] = v
}

// Pos exposes the flat position for white-box verification.
func (st *StridedStepper) Pos() int { return st.pos }
