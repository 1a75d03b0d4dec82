// Package core defines the fundamental contracts shared by every
// container, adapter and view in xtensor:
//
//   - Expression — anything with a shape that can be read and written
//     element-by-element and traversed with a Stepper.
//   - Stepper    — an incremental cursor that advances one axis at a
//     time without recomputing full coordinate tuples.
//   - Buffered   — the optional direct-buffer capability (flat data,
//     per-axis strides, base offset) that unlocks stride-based fast
//     paths in consumers.
//
// The package also ships the row-major shape/stride arithmetic and a
// concrete StridedStepper reused by the dense container and by the
// third-party adapters.
//
// core has no dependencies outside the standard library; everything
// else in the module builds on top of it.
package core
