// SPDX-License-Identifier: MIT
package view_test

import (
	"testing"

	"github.com/avr914/xtensor/core"
	"github.com/avr914/xtensor/dense"
	"github.com/avr914/xtensor/view"
	"github.com/avr914/xtensor/xslice"
)

// Sinks defeat dead-code elimination in the benchmarks below.
var (
	benchFloat float64
	benchInts  []int
)

func benchSeq(b *testing.B, shape ...int) *dense.Dense {
	b.Helper()
	data := make([]float64, core.ShapeSize(shape))
	for i := range data {
		data[i] = float64(i)
	}
	d, err := dense.FromSlice(data, shape...)
	if err != nil {
		b.Fatal(err)
	}

	return d
}

func BenchmarkView_At(b *testing.B) {
	v, err := view.Of(benchSeq(b, 64, 64), xslice.Range(8, 56), xslice.RangeStep(0, 64, 2))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ := v.At(i%48, i%32)
		benchFloat += x
	}
}

func BenchmarkView_Construct(b *testing.B) {
	d := benchSeq(b, 64, 64)
	slices := []xslice.Slice{xslice.Range(8, 56), xslice.All()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := view.New(d, slices)
		if err != nil {
			b.Fatal(err)
		}
		benchInts = v.Shape()
	}
}

func BenchmarkView_StepperSweep(b *testing.B) {
	v, err := view.Of(benchSeq(b, 64, 64), xslice.Range(8, 56), xslice.RangeStep(0, 64, 2))
	if err != nil {
		b.Fatal(err)
	}
	shape := v.Shape()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st := v.StepperBegin().(*view.Stepper)
		for r := 0; r < shape[0]; r++ {
			for c := 0; c < shape[1]; c++ {
				benchFloat += st.Value()
				if c+1 < shape[1] {
					st.Step(1, 1)
				}
			}
			st.Reset(1)
			if r+1 < shape[0] {
				st.Step(0, 1)
			}
		}
	}
}

func BenchmarkView_Fill(b *testing.B) {
	v, err := view.Of(benchSeq(b, 64, 64), xslice.Range(8, 56), xslice.All())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Fill(float64(i))
	}
}
