// SPDX-License-Identifier: MIT
// Package view_test: construction, validation and shape derivation.
// Shared fixtures live here: seq builds a dense array whose element at
// flat position i is float64(i), which makes every expected value below
// readable as row-major arithmetic on the shape.
package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avr914/xtensor/core"
	"github.com/avr914/xtensor/dense"
	"github.com/avr914/xtensor/view"
	"github.com/avr914/xtensor/xslice"
)

// seq returns a dense array of the given shape filled with 0,1,2,...
// in row-major order.
func seq(t *testing.T, shape ...int) *dense.Dense {
	t.Helper()
	data := make([]float64, core.ShapeSize(shape))
	for i := range data {
		data[i] = float64(i)
	}
	d, err := dense.FromSlice(data, shape...)
	require.NoError(t, err)

	return d
}

func TestOf_WindowShape(t *testing.T) {
	// Underlying [4,5]: rows 1..2, all columns.
	v, err := view.Of(seq(t, 4, 5), xslice.Range(1, 3), xslice.All())
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, v.Shape())
	require.Equal(t, 2, v.Rank())
	require.Equal(t, 10, v.Size())
	require.Equal(t, core.LayoutDynamic, v.Layout())
}

func TestOf_IntegralRemovesAxis(t *testing.T) {
	// Underlying [3,4]: pinning row 2 leaves a rank-1 view of extent 4.
	v, err := view.Of(seq(t, 3, 4), xslice.At(2), xslice.All())
	require.NoError(t, err)
	require.Equal(t, []int{4}, v.Shape())
	require.Equal(t, 1, v.Rank())
}

func TestOf_NewAxisInsertsUnitAxis(t *testing.T) {
	// Underlying [3]: a leading unit axis yields shape [1,3].
	v, err := view.Of(seq(t, 3), xslice.NewAxis(), xslice.All())
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, v.Shape())
	require.Equal(t, 2, v.Rank())
}

func TestOf_SteppedRange(t *testing.T) {
	// Underlying [6]: [1,5) step 2 keeps coordinates 1 and 3.
	v, err := view.Of(seq(t, 6), xslice.RangeStep(1, 5, 2))
	require.NoError(t, err)
	require.Equal(t, []int{2}, v.Shape())
}

func TestOf_TrailingAxesForwarded(t *testing.T) {
	// Slices may cover a prefix of the axes; the rest pass through.
	v, err := view.Of(seq(t, 2, 3, 4), xslice.At(1))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, v.Shape())

	v, err = view.Of(seq(t, 2, 3, 4), xslice.At(1), xslice.NewAxis(), xslice.RangeStep(0, 3, 2))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, v.Shape())
}

func TestOf_RankInvariant(t *testing.T) {
	// Rank = underlying rank − integral slices + new-axis slots,
	// whatever the arrangement.
	cases := []struct {
		slices    []xslice.Slice
		integrals int
		newaxes   int
	}{
		{[]xslice.Slice{xslice.All(), xslice.All(), xslice.All()}, 0, 0},
		{[]xslice.Slice{xslice.At(0), xslice.At(1), xslice.At(2)}, 3, 0},
		{[]xslice.Slice{xslice.NewAxis(), xslice.At(0), xslice.NewAxis(), xslice.Range(0, 2)}, 1, 2},
		{[]xslice.Slice{xslice.Range(1, 2), xslice.NewAxis()}, 0, 1},
	}
	for _, tc := range cases {
		d := seq(t, 2, 3, 4)
		v, err := view.New(d, tc.slices)
		require.NoError(t, err)
		require.Equal(t, d.Rank()-tc.integrals+tc.newaxes, v.Rank(),
			"slices %v", tc.slices)
	}
}

func TestOf_AllIntegralIsRankZero(t *testing.T) {
	v, err := view.Of(seq(t, 3, 4), xslice.At(1), xslice.At(2))
	require.NoError(t, err)
	require.Equal(t, 0, v.Rank())
	require.Equal(t, []int{}, v.Shape())
	require.Equal(t, 1, v.Size())
}

func TestOf_EmptyWindow(t *testing.T) {
	v, err := view.Of(seq(t, 4, 5), xslice.Range(2, 2), xslice.All())
	require.NoError(t, err)
	require.Equal(t, []int{0, 5}, v.Shape())
	require.Equal(t, 0, v.Size())
}

func TestNew_NilExpression(t *testing.T) {
	_, err := view.New(nil, []xslice.Slice{xslice.All()})
	require.ErrorIs(t, err, view.ErrNilExpression)
}

func TestNew_EllipsisRejected(t *testing.T) {
	_, err := view.Of(seq(t, 2, 3), xslice.Ellipsis(), xslice.At(0))
	require.ErrorIs(t, err, view.ErrEllipsisUnsupported)
}

func TestNew_TooManySlices(t *testing.T) {
	_, err := view.Of(seq(t, 3), xslice.All(), xslice.All())
	require.ErrorIs(t, err, view.ErrTooManySlices)

	// New-axis slots consume no underlying axis, so they never count
	// against the rank.
	v, err := view.Of(seq(t, 3), xslice.NewAxis(), xslice.All(), xslice.NewAxis())
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 1}, v.Shape())
}

func TestNew_BindErrorsPropagate(t *testing.T) {
	_, err := view.Of(seq(t, 3, 4), xslice.At(3), xslice.All())
	require.ErrorIs(t, err, xslice.ErrOutOfRange)

	_, err = view.Of(seq(t, 3, 4), xslice.RangeStep(0, 3, 0))
	require.ErrorIs(t, err, xslice.ErrZeroStep)
}

func TestView_UnderlyingAccessors(t *testing.T) {
	d := seq(t, 4, 5)
	v, err := view.Of(d, xslice.Range(1, 3), xslice.All())
	require.NoError(t, err)

	require.Equal(t, 4, v.UnderlyingSize(0))
	require.Equal(t, 5, v.UnderlyingSize(1))
	require.Same(t, core.Expression(d), v.Underlying())

	sl := v.Slices()
	require.Len(t, sl, 2)
	require.Equal(t, xslice.KindRange, sl[0].Kind())
	require.Equal(t, xslice.KindAll, sl[1].Kind())
}

func TestWithOwned(t *testing.T) {
	d := seq(t, 2, 3)
	v, err := view.New(d, []xslice.Slice{xslice.At(0), xslice.All()}, view.WithOwned())
	require.NoError(t, err)
	require.True(t, v.Owned())
	require.NotSame(t, core.Expression(d), v.Underlying())

	// Writes through an owned view stay in the private copy.
	require.NoError(t, v.Set(99, 1))
	got, err := d.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 99.0, got)
}

func TestWithOwned_NotCloneable(t *testing.T) {
	inner, err := view.Of(seq(t, 2, 3), xslice.All(), xslice.All())
	require.NoError(t, err)

	// A view is a valid operand but offers no deep-copy capability.
	_, err = view.New(inner, []xslice.Slice{xslice.At(0)}, view.WithOwned())
	require.ErrorIs(t, err, view.ErrNotCloneable)
}
