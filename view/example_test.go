// SPDX-License-Identifier: MIT
package view_test

import (
	"fmt"

	"github.com/avr914/xtensor/dense"
	"github.com/avr914/xtensor/view"
	"github.com/avr914/xtensor/xslice"
)

// ExampleOf demonstrates windowing rows of a matrix without copying.
func ExampleOf() {
	d, _ := dense.FromSlice([]float64{
		0, 1, 2, 3, 4,
		5, 6, 7, 8, 9,
		10, 11, 12, 13, 14,
		15, 16, 17, 18, 19,
	}, 4, 5)

	v, _ := view.Of(d, xslice.Range(1, 3), xslice.All())
	fmt.Println(v.Shape())

	x, _ := v.At(0, 0)
	fmt.Println(x)
	x, _ = v.At(1, 4)
	fmt.Println(x)

	// Output:
	// [2 5]
	// 5
	// 14
}

// ExampleView_Set shows that a view aliases its operand: writes through
// the view land in the original array.
func ExampleView_Set() {
	d, _ := dense.FromSlice([]float64{0, 1, 2, 3, 4, 5}, 2, 3)

	v, _ := view.Of(d, xslice.At(1), xslice.All())
	_ = v.Set(-1, 0)

	x, _ := d.At(1, 0)
	fmt.Println(x)

	// Output:
	// -1
}

// ExampleView_Fill overwrites every other element of a vector through a
// stepped range.
func ExampleView_Fill() {
	d, _ := dense.FromSlice([]float64{0, 1, 2, 3, 4, 5}, 6)

	v, _ := view.Of(d, xslice.RangeStep(0, 6, 2))
	v.Fill(9)

	fmt.Println(d.Data())

	// Output:
	// [9 1 9 3 9 5]
}

// ExampleView_Strides inspects the flat geometry a view derives over
// its operand's buffer.
func ExampleView_Strides() {
	d, _ := dense.FromSlice([]float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, 3, 4)

	v, _ := view.Of(d, xslice.At(2), xslice.RangeStep(0, 4, 2))

	strides, _ := v.Strides()
	offset, _ := v.Offset()
	fmt.Println(strides, offset)

	// Output:
	// [2] 8
}
