// SPDX-License-Identifier: MIT

// Package view: View construction and the shape deriver.
// Construction runs exactly once per view: it validates the slice
// list, resolves ownership, binds every slice to the extent of the
// underlying axis it addresses, and derives the view's shape. The
// shape is never recomputed afterwards.
package view

import (
	"fmt"
	"sync"

	"github.com/avr914/xtensor/core"
	"github.com/avr914/xtensor/xslice"
)

// View is a non-owning, shape-transformed presentation of an existing
// expression. It aliases the underlying storage: reads and writes
// through the view observe and mutate the original. Immutable after
// construction except for the memoized stride cache.
//
// View itself implements core.Expression, so views nest.
type View struct {
	e      core.Expression // borrowed handle, or a private clone when owned
	slices []xslice.Bound  // one per supplied slice argument, fixed length
	shape  []int           // derived once at construction
	owned  bool            // ownership marker chosen at construction

	// Memoized stride cache, valid only when e is core.Buffered.
	// Filled at most once; racing first uses are serialized by once.
	strideOnce sync.Once
	strides    []int
	offset     int
	strideErr  error
}

// New constructs a view of e described by the given slice list.
// Stage 1 (Validate): non-nil expression, no ellipsis, slice list must
// not consume more axes than e has.
// Stage 2 (Resolve): ownership marker, then bind each slice to the
// extent of the underlying axis it addresses.
// Stage 3 (Derive): compute rank and per-axis extents via the
// integral-skip walk; optionally materialize the stride cache.
// Complexity: O(len(slices)² + rank·len(slices)) on the runtime walks;
// construction runs once per view.
func New(e core.Expression, slices []xslice.Slice, opts ...Option) (*View, error) {
	if e == nil {
		return nil, fmt.Errorf("view: New: %w", ErrNilExpression)
	}
	cfg := gatherOptions(opts)

	// Validate the slice list before touching the expression.
	consumed, newaxes, integrals := 0, 0, 0
	for _, s := range slices {
		switch s.Kind() {
		case xslice.KindEllipsis:
			return nil, fmt.Errorf("view: New: %w", ErrEllipsisUnsupported)
		case xslice.KindNewAxis:
			newaxes++
		case xslice.KindIndex:
			consumed++
			integrals++
		default:
			consumed++
		}
	}
	if consumed > e.Rank() {
		return nil, fmt.Errorf("view: New: %d slices for rank %d: %w",
			consumed, e.Rank(), ErrTooManySlices)
	}

	// Resolve ownership: an owned view operates on a private deep copy.
	if cfg.owned {
		c, ok := e.(core.Cloneable)
		if !ok {
			return nil, fmt.Errorf("view: New: %T: %w", e, ErrNotCloneable)
		}
		e = c.CloneExpression()
	}

	// Bind each slice to the extent of the underlying axis it addresses.
	// New-axis slots consume no axis, so the running count keeps the
	// position→axis correspondence straight.
	bound := make([]xslice.Bound, len(slices))
	na := 0
	for p, s := range slices {
		if s.Kind() == xslice.KindNewAxis {
			na++
			bound[p], _ = s.Bind(1)
			continue
		}
		b, err := s.Bind(e.Shape()[p-na])
		if err != nil {
			return nil, fmt.Errorf("view: New slice %d: %w", p, err)
		}
		bound[p] = b
	}

	v := &View{
		e:      e,
		slices: bound,
		shape:  deriveShape(e, bound, e.Rank()-integrals+newaxes),
		owned:  cfg.owned,
	}

	if cfg.eagerStrides {
		if _, err := v.Strides(); err != nil {
			return nil, fmt.Errorf("view: New: eager strides: %w", err)
		}
	}

	return v, nil
}

// Of is the convenience constructor mirroring the slice-splat call
// sites most code wants: view.Of(e, xslice.Range(1, 3), xslice.All()).
func Of(e core.Expression, slices ...xslice.Slice) (*View, error) {
	return New(e, slices)
}

// deriveShape computes the per-axis extents of the view: for every
// view axis, its slice position via the integral-skip walk; positions
// inside the list contribute their slice's size, trailing positions
// forward the underlying extent unchanged.
func deriveShape(e core.Expression, sl []xslice.Bound, rank int) []int {
	shape := make([]int, rank)
	for i := range shape {
		p := integralSkip(sl, i)
		if p < len(sl) {
			shape[i] = sl[p].Size()
			continue
		}
		shape[i] = e.Shape()[p-newaxisCountBefore(sl, p)]
	}

	return shape
}

// Shape returns the view's per-axis extents. Read-only for callers.
func (v *View) Shape() []int { return v.shape }

// Rank returns the number of view axes:
// underlying rank − integral slices + new-axis slots.
func (v *View) Rank() int { return len(v.shape) }

// Size returns the total number of elements the view presents.
func (v *View) Size() int { return core.ShapeSize(v.shape) }

// Layout always reports LayoutDynamic: a view never advertises a
// static contiguous layout, whatever its strides work out to be.
func (v *View) Layout() core.Layout { return core.LayoutDynamic }

// Slices returns the bound slice list. Read-only for callers.
func (v *View) Slices() []xslice.Bound { return v.slices }

// Underlying returns the viewed expression (the private clone, for an
// owned view).
func (v *View) Underlying() core.Expression { return v.e }

// UnderlyingSize returns the extent of the given underlying axis.
func (v *View) UnderlyingSize(axis int) int { return v.e.Shape()[axis] }

// Owned reports whether the view operates on a private copy of its
// operand rather than borrowing the caller's value.
func (v *View) Owned() bool { return v.owned }
