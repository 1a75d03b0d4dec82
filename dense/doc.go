// Package dense provides the n-dimensional row-major float64 container
// that views alias. A Dense owns a flat backing slice, always in
// canonical C-order with base offset zero, and implements the full
// core.Expression and core.Buffered contracts: tuple element access,
// begin/end steppers, and the direct-buffer capability that lets views
// derive strides.
//
// Dense never resizes; shape is fixed at construction. FromSlice wraps
// caller storage without copying, so a Dense can alias data owned
// elsewhere — the same zero-copy discipline views apply one level up.
package dense
