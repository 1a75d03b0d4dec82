// SPDX-License-Identifier: MIT

// Package core: shared contracts for containers, adapters and views.
// This file intentionally contains ONLY interface types and the layout
// classification; concrete helpers live in shape.go and stepper.go.
package core

// Layout classifies how an expression's elements are arranged relative
// to its flat storage.
type Layout int

const (
	// LayoutRowMajor marks canonical row-major (C-order) storage:
	// the last axis is contiguous and the base offset is zero.
	LayoutRowMajor Layout = iota

	// LayoutDynamic marks every other arrangement. Views always report
	// LayoutDynamic: a view never advertises a static contiguous layout,
	// whatever its strides happen to be.
	LayoutDynamic
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	if l == LayoutRowMajor {
		return "row-major"
	}

	return "dynamic"
}

// Expression is the contract a multidimensional value must satisfy to
// be sliced, viewed or traversed. Implementations are expected to be
// cheap to hand around (handles, not payload copies).
//
// Element access accepts an index tuple of length ≤ Rank(); missing
// trailing coordinates default to 0. An index longer than Rank() is an
// error. All methods are synchronous and must not retain the index
// slice beyond the call.
type Expression interface {
	// Shape returns the per-axis extents. Callers must treat the
	// returned slice as read-only.
	Shape() []int

	// Rank returns the number of axes.
	Rank() int

	// Size returns the total element count (product of extents).
	Size() int

	// Layout reports the storage layout classification.
	Layout() Layout

	// Element reads the element at the given coordinate tuple.
	Element(index []int) (float64, error)

	// SetElement writes the element at the given coordinate tuple.
	SetElement(v float64, index []int) error

	// StepperBegin returns a cursor anchored on the first element.
	StepperBegin() Stepper

	// StepperEnd returns a cursor in the one-past-last state.
	StepperEnd() Stepper
}

// Stepper is an incremental traversal cursor over an Expression.
// Axis arguments are in the expression's own axis numbering; n is a
// step count along that axis (not a flat-storage delta) and may be
// negative, in which case Step(axis, -n) ≡ StepBack(axis, n).
//
// Dereferencing the one-past-last state is undefined; step back first.
// Independent Steppers share no mutable state with each other.
type Stepper interface {
	// Step advances the cursor n positions along axis.
	Step(axis, n int)

	// StepBack retreats the cursor n positions along axis.
	StepBack(axis, n int)

	// ToBegin rewinds the cursor to the first element.
	ToBegin()

	// ToEnd places the cursor in the one-past-last state.
	ToEnd()

	// Value reads the element the cursor currently points at.
	Value() float64

	// SetValue writes the element the cursor currently points at.
	SetValue(v float64)
}

// Buffered is the optional direct-buffer capability: expressions whose
// elements live in one flat float64 slice addressed by per-axis strides
// from a base offset. Consumers use it to derive stride-based fast
// paths; expressions without it are still fully usable through Element
// and Stepper.
type Buffered interface {
	Expression

	// Data returns the flat backing slice. The slice aliases the
	// expression's storage: writes through it are visible to readers.
	Data() []float64

	// Strides returns the per-axis flat-storage deltas. Callers must
	// treat the returned slice as read-only.
	Strides() []int

	// Offset returns the flat index of the element at the all-zero
	// coordinate tuple.
	Offset() int
}

// Cloneable lets a consumer take an independent deep copy of an
// expression, e.g. when a view must own its operand instead of
// borrowing it.
type Cloneable interface {
	// CloneExpression returns a deep, independent copy.
	CloneExpression() Expression
}
