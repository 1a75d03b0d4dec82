// SPDX-License-Identifier: MIT
// Package xslice_test contains unit tests for the slice catalogue:
// constructor tags, binding (negative coordinates, clamping, backward
// steps) and the Size/StepSize/Value contract per kind.
package xslice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avr914/xtensor/xslice"
)

func TestRange_BindForward(t *testing.T) {
	// [1,3) over an axis of extent 5 keeps coordinates 1 and 2.
	b, err := xslice.Range(1, 3).Bind(5)
	require.NoError(t, err)
	require.Equal(t, xslice.KindRange, b.Kind())
	require.Equal(t, 2, b.Size())
	require.Equal(t, 1, b.StepSize())
	require.Equal(t, 1, b.Value(0))
	require.Equal(t, 2, b.Value(1))
}

func TestRange_BindStepped(t *testing.T) {
	// [1,5) step 2 → coordinates 1 and 3.
	b, err := xslice.RangeStep(1, 5, 2).Bind(6)
	require.NoError(t, err)
	require.Equal(t, 2, b.Size())
	require.Equal(t, 2, b.StepSize())
	require.Equal(t, 1, b.Value(0))
	require.Equal(t, 3, b.Value(1))
}

func TestRange_BindNegativeBounds(t *testing.T) {
	// Negative bounds count from the end: [-3,-1) of extent 5 is [2,4).
	b, err := xslice.Range(-3, -1).Bind(5)
	require.NoError(t, err)
	require.Equal(t, 2, b.Size())
	require.Equal(t, 2, b.Value(0))
	require.Equal(t, 3, b.Value(1))
}

func TestRange_BindClamps(t *testing.T) {
	// Over-long stop clamps to the extent.
	b, err := xslice.Range(0, 99).Bind(4)
	require.NoError(t, err)
	require.Equal(t, 4, b.Size())

	// A window entirely past the axis is empty, never negative.
	b, err = xslice.Range(9, 12).Bind(4)
	require.NoError(t, err)
	require.Equal(t, 0, b.Size())
}

func TestRange_BindBackward(t *testing.T) {
	// Full reverse of an extent-6 axis: start at the end, stop one
	// before coordinate 0.
	b, err := xslice.RangeStep(-1, -7, -1).Bind(6)
	require.NoError(t, err)
	require.Equal(t, 6, b.Size())
	require.Equal(t, -1, b.StepSize())
	require.Equal(t, 5, b.Value(0))
	require.Equal(t, 0, b.Value(5))
}

func TestRange_BindZeroStep(t *testing.T) {
	_, err := xslice.RangeStep(0, 3, 0).Bind(5)
	require.ErrorIs(t, err, xslice.ErrZeroStep)
}

func TestAll_Bind(t *testing.T) {
	b, err := xslice.All().Bind(7)
	require.NoError(t, err)
	require.Equal(t, xslice.KindAll, b.Kind())
	require.Equal(t, 7, b.Size())
	require.Equal(t, 1, b.StepSize())
	for i := 0; i < 7; i++ {
		require.Equal(t, i, b.Value(i))
	}
}

func TestAt_Bind(t *testing.T) {
	b, err := xslice.At(2).Bind(4)
	require.NoError(t, err)
	require.Equal(t, xslice.KindIndex, b.Kind())
	// An integral slice contributes no view axis...
	require.Equal(t, 0, b.Size())
	require.Equal(t, 1, b.StepSize())
	// ...and pins its coordinate for every position argument.
	require.Equal(t, 2, b.Value(0))
	require.Equal(t, 2, b.Value(7))
	require.Equal(t, 2, b.Value(-1))
}

func TestAt_BindNegative(t *testing.T) {
	b, err := xslice.At(-1).Bind(4)
	require.NoError(t, err)
	require.Equal(t, 3, b.Value(0))
}

func TestAt_BindOutOfRange(t *testing.T) {
	_, err := xslice.At(4).Bind(4)
	require.ErrorIs(t, err, xslice.ErrOutOfRange)

	_, err = xslice.At(-5).Bind(4)
	require.ErrorIs(t, err, xslice.ErrOutOfRange)
}

func TestNewAxis_Bind(t *testing.T) {
	b, err := xslice.NewAxis().Bind(1)
	require.NoError(t, err)
	require.Equal(t, xslice.KindNewAxis, b.Kind())
	require.Equal(t, 1, b.Size())
	require.Equal(t, 0, b.StepSize())
	require.Equal(t, 0, b.Value(0))
}

func TestEllipsis_BindRejected(t *testing.T) {
	_, err := xslice.Ellipsis().Bind(3)
	require.ErrorIs(t, err, xslice.ErrEllipsisUnbindable)
}

func TestBind_NegativeExtent(t *testing.T) {
	_, err := xslice.All().Bind(-1)
	require.ErrorIs(t, err, xslice.ErrBadExtent)
}

func TestSlice_String(t *testing.T) {
	require.Equal(t, "range(1,3)", xslice.Range(1, 3).String())
	require.Equal(t, "range(0,6,2)", xslice.RangeStep(0, 6, 2).String())
	require.Equal(t, "at(-1)", xslice.At(-1).String())
	require.Equal(t, "all", xslice.All().String())
	require.Equal(t, "newaxis", xslice.NewAxis().String())
	require.Equal(t, "ellipsis", xslice.Ellipsis().String())
}
