// SPDX-License-Identifier: MIT

// Package view: the index mapper (element access).
// mapCoords translates a view-space coordinate tuple into an
// underlying-space tuple, one underlying axis at a time:
//
//   - a Range/All position maps the incoming coordinate through the
//     slice's Value;
//   - an integral position ignores incoming coordinates and pins its
//     constant;
//   - a new-axis position consumes no underlying axis — its view
//     coordinate is skipped;
//   - a trailing underlying axis beyond the slice list forwards its
//     view coordinate unchanged.
//
// Missing trailing view coordinates fall back to each slice's
// Value(0), respectively 0 beyond the list, so partial tuples address
// the first element of every unspecified axis.
package view

import (
	"fmt"

	"github.com/avr914/xtensor/xslice"
)

// At reads the element at the given view-space coordinates, after
// validating them against the view's shape. Fewer coordinates than
// rank default the trailing axes to 0; more coordinates than rank, or
// a coordinate at or beyond its extent, fail with ErrOutOfRange before
// any mapping happens.
// Complexity: O(underlying rank · len(slices)).
func (v *View) At(coords ...int) (float64, error) {
	if err := v.checkAccess(coords); err != nil {
		return 0, err
	}

	return v.e.Element(v.mapCoords(coords))
}

// Set writes val at the given view-space coordinates, with the same
// checking rules as At. The write lands in the underlying storage.
func (v *View) Set(val float64, coords ...int) error {
	if err := v.checkAccess(coords); err != nil {
		return err
	}

	return v.e.SetElement(val, v.mapCoords(coords))
}

// Element reads the element at the given view-space index tuple
// without view-side validation; whatever bounds discipline the
// underlying expression applies propagates unchanged. Implements
// core.Expression.
func (v *View) Element(index []int) (float64, error) {
	return v.e.Element(v.mapCoords(index))
}

// SetElement writes val at the given view-space index tuple, with the
// same rules as Element. Implements core.Expression.
func (v *View) SetElement(val float64, index []int) error {
	return v.e.SetElement(val, v.mapCoords(index))
}

// checkAccess validates a coordinate tuple against the derived shape.
func (v *View) checkAccess(coords []int) error {
	if len(coords) > len(v.shape) {
		return fmt.Errorf("view: %d coordinates for rank %d: %w",
			len(coords), len(v.shape), ErrOutOfRange)
	}
	for k, c := range coords {
		if c < 0 || c >= v.shape[k] {
			return fmt.Errorf("view: coordinate %d on axis %d of shape %v: %w",
				c, k, v.shape, ErrOutOfRange)
		}
	}

	return nil
}

// mapCoords performs the view-space → underlying-space translation.
// pos is a cursor over the incoming view coordinates; jumping it to
// the view axis aligned with the current slice position is what skips
// the coordinates supplied for new-axis axes.
func (v *View) mapCoords(index []int) []int {
	sl := v.slices
	idx := make([]int, v.e.Rank())
	pos := 0
	for u := range idx {
		p := newaxisSkip(sl, u)
		if k := p - integralCountBefore(sl, p); k > pos {
			pos = k
		}
		if p >= len(sl) {
			// Trailing underlying axis: forward the view coordinate.
			if pos < len(index) {
				idx[u] = index[pos]
				pos++
			}
			continue
		}
		b := sl[p]
		if b.Kind() == xslice.KindIndex {
			// Integral slice: pinned constant, no coordinate consumed.
			idx[u] = b.Value(0)
			continue
		}
		if pos < len(index) {
			idx[u] = b.Value(index[pos])
			pos++
			continue
		}
		idx[u] = b.Value(0)
	}

	return idx
}
