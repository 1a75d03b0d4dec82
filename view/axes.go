// SPDX-License-Identifier: MIT

// Package view: axis-correspondence bookkeeping.
// Slice positions, view axes and underlying axes are three different
// numberings. The walks in this file are the ONLY translation between
// them; shape derivation, element access, the stride cache and the
// stepper all call these same helpers, which is what keeps the three
// algorithms bit-for-bit consistent.
//
// Terminology, for a slice list sl:
//
//	integralCountBefore(sl, p) — integral slices among positions < p.
//	newaxisCountBefore(sl, p)  — new-axis slots among positions < p.
//	integralSkip(sl, i)        — slice position of view axis i: the
//	                             i-th non-integral position, or the
//	                             synthetic position len(sl)+k for
//	                             trailing axes beyond the list.
//	newaxisSkip(sl, u)         — slice position of underlying axis u:
//	                             the u-th non-new-axis position, or a
//	                             synthetic trailing position.
//
// Both skip walks return positions ≥ len(sl) for trailing axes; in
// that region position − newaxisCountBefore(position) is still the
// correct underlying axis, because every new-axis slot lives inside
// the explicit list.
package view

import "github.com/avr914/xtensor/xslice"

// integralCountBefore counts integral slices among positions < p.
// p may exceed len(sl); the count saturates at the total.
// Complexity: O(min(p, len)).
func integralCountBefore(sl []xslice.Bound, p int) int {
	n := 0
	for q := 0; q < p && q < len(sl); q++ {
		if sl[q].Kind() == xslice.KindIndex {
			n++
		}
	}

	return n
}

// newaxisCountBefore counts new-axis slots among positions < p.
// Complexity: O(min(p, len)).
func newaxisCountBefore(sl []xslice.Bound, p int) int {
	n := 0
	for q := 0; q < p && q < len(sl); q++ {
		if sl[q].Kind() == xslice.KindNewAxis {
			n++
		}
	}

	return n
}

// integralSkip maps view axis i to its slice position: integral
// positions are consumed without advancing the axis counter. When the
// list is exhausted the result extends past it, preserving
// position − totalIntegral == i.
// Complexity: O(len).
func integralSkip(sl []xslice.Bound, i int) int {
	seen := 0
	for p := range sl {
		if sl[p].Kind() == xslice.KindIndex {
			continue
		}
		if seen == i {
			return p
		}
		seen++
	}

	return len(sl) + (i - seen)
}

// newaxisSkip maps underlying axis u to its slice position: new-axis
// slots are consumed without advancing the axis counter.
// Complexity: O(len).
func newaxisSkip(sl []xslice.Bound, u int) int {
	seen := 0
	for p := range sl {
		if sl[p].Kind() == xslice.KindNewAxis {
			continue
		}
		if seen == u {
			return p
		}
		seen++
	}

	return len(sl) + (u - seen)
}

// isNewAxisAt reports whether slice position p addresses a new-axis
// slot. Positions beyond the list are never new-axis.
func isNewAxisAt(sl []xslice.Bound, p int) bool {
	return p < len(sl) && sl[p].Kind() == xslice.KindNewAxis
}
