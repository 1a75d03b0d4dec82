// Package view implements zero-copy, shape-transformed presentations
// of existing expressions: given an underlying core.Expression and an
// ordered list of per-axis xslice specifications, a View is a new
// expression of different shape that aliases the original storage.
// Reads and writes through the view observe and mutate the original;
// nothing is ever copied.
//
// The heart of the package is the axis-translation arithmetic. Slice
// positions are NOT one-to-one with view axes: an integral slice
// (xslice.At) consumes an underlying axis without producing a view
// axis, and xslice.NewAxis produces a view axis without consuming an
// underlying one. Three independent algorithms — shape derivation,
// element-access index mapping, and stepping — all translate between
// view space and underlying space through the same pair of running
// counts ("integral slices before position P", "new axes before
// position P"), so they agree on every slice-kind combination.
//
// A View is immutable after construction, except for its stride cache,
// which is computed once on first use (or eagerly, see
// WithEagerStrides) and is only available when the underlying
// expression exposes the direct-buffer capability.
//
// Views are themselves core.Expressions, so views of views compose,
// steppers included.
//
// The ellipsis wildcard (xslice.Ellipsis) is rejected at construction:
// every algorithm here assumes a statically fixed correspondence
// between slice positions and axis roles.
package view
