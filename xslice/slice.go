// SPDX-License-Identifier: MIT

// Package xslice: the Slice variant and its constructors.
// Slice is a closed tagged variant over {Range, All, At, NewAxis,
// Ellipsis}; per-axis behavior is resolved by runtime inspection of
// the tag, never by type switching on heterogeneous implementations.
package xslice

import "fmt"

// Kind tags the variant of a Slice.
type Kind int

const (
	// KindRange is a [start, stop) window with a non-zero step.
	KindRange Kind = iota

	// KindAll is the whole axis, untouched.
	KindAll

	// KindIndex is an integral slice: it pins one coordinate and
	// removes the axis from the view.
	KindIndex

	// KindNewAxis inserts a fresh extent-1 axis that consumes no
	// underlying axis.
	KindNewAxis

	// KindEllipsis is the rejected "rest of the axes" wildcard.
	KindEllipsis
)

// String returns the constructor-style spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindAll:
		return "all"
	case KindIndex:
		return "at"
	case KindNewAxis:
		return "newaxis"
	default:
		return "ellipsis"
	}
}

// Slice is one per-axis specification of a view. It is an inert value:
// coordinates may be negative (counted from the end of the axis) until
// Bind resolves them against a concrete extent.
type Slice struct {
	kind  Kind
	start int // Range start, or the pinned coordinate for At
	stop  int // Range stop (exclusive), unused otherwise
	step  int // Range step, unused otherwise
}

// Range selects [start, stop) with step 1. Negative bounds count from
// the end of the axis once bound.
func Range(start, stop int) Slice {
	return Slice{kind: KindRange, start: start, stop: stop, step: 1}
}

// RangeStep selects [start, stop) with an arbitrary non-zero step.
// A negative step walks the axis backward. Step 0 is rejected at bind
// time with ErrZeroStep.
func RangeStep(start, stop, step int) Slice {
	return Slice{kind: KindRange, start: start, stop: stop, step: step}
}

// All selects the whole axis.
func All() Slice {
	return Slice{kind: KindAll, step: 1}
}

// At pins the axis to coordinate i and removes it from the view.
// Negative i counts from the end of the axis once bound.
func At(i int) Slice {
	return Slice{kind: KindIndex, start: i, step: 1}
}

// NewAxis inserts a fresh axis of extent 1.
func NewAxis() Slice {
	return Slice{kind: KindNewAxis, step: 1}
}

// Ellipsis is the "consume all remaining axes" wildcard. Views reject
// it at construction: every translation algorithm assumes a fixed
// one-to-one correspondence between slice positions and axis roles.
func Ellipsis() Slice {
	return Slice{kind: KindEllipsis}
}

// Kind returns the variant tag.
func (s Slice) Kind() Kind { return s.kind }

// String renders the slice the way it would be constructed.
func (s Slice) String() string {
	switch s.kind {
	case KindRange:
		if s.step == 1 {
			return fmt.Sprintf("range(%d,%d)", s.start, s.stop)
		}

		return fmt.Sprintf("range(%d,%d,%d)", s.start, s.stop, s.step)
	case KindIndex:
		return fmt.Sprintf("at(%d)", s.start)
	default:
		return s.kind.String()
	}
}
