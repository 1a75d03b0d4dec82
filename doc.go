// Package xtensor is an in-memory toolkit for zero-copy slicing of
// multidimensional arrays — views that reshape an existing expression
// without ever touching its storage.
//
// 🚀 What is xtensor?
//
//	A small, deterministic library that brings together:
//		• Core contracts: expressions, steppers and the direct-buffer capability
//		• A slice catalogue: ranges (negative bounds, arbitrary steps), whole
//		  axes, integral axis removal, new-axis insertion
//		• Views: aliasing, writable, nestable presentations of any expression
//		• Steppers: incremental axis-by-axis cursors fit for broadcast loops
//		• Adapters: gorgonia tensors and gonum matrices as view operands
//
// ✨ Why choose xtensor?
//
//   - Zero-copy by construction — a view is coordinates, never data
//   - Rock-solid axis arithmetic — shape, access and stepping share one
//     bookkeeping and agree bit-for-bit
//   - Pure Go core — the heavy dependencies live only in adapters/
//
// Under the hood, everything is organized under five subpackages:
//
//	core/     — Expression, Stepper, Buffered contracts + strided machinery
//	xslice/   — the closed per-axis slice catalogue
//	dense/    — the canonical row-major float64 container
//	view/     — shape derivation, index mapping, stride cache, steppers
//	adapters/ — gorgonia.org/tensor and gonum.org/v1/gonum/mat bridges
//
// Quick ASCII example:
//
//	underlying 4×5          view = (range(1,3), all)
//	. . . . .
//	x x x x x     ⇒         shape 2×5, aliasing rows 1..2
//	x x x x x
//	. . . . .
//
// Dive into the package docs for the slice-kind contract, the stepper
// protocol, and the ownership and stride-cache rules.
//
//	go get github.com/avr914/xtensor
package xtensor
