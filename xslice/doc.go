// Package xslice is the closed catalogue of per-axis slice kinds
// consumed by xtensor views:
//
//   - Range    — a [start, stop) window with a non-zero step; consumes
//     one underlying axis and produces one view axis with remapped
//     coordinates. Negative start/stop count from the end of the axis.
//   - All      — the whole axis, untouched.
//   - At       — an integral slice: pins the axis to one coordinate and
//     removes it from the view.
//   - NewAxis  — inserts a fresh axis of extent 1 that consumes no
//     underlying axis.
//   - Ellipsis — a "rest of the axes" wildcard, provided ONLY so that
//     views can reject it at construction; no algorithm supports it.
//
// Slice values are inert specifications. Binding one to a concrete
// axis extent (Slice.Bind) resolves negative coordinates and yields a
// Bound, the form that exposes the Size/StepSize/Value contract the
// view algorithms consume.
package xslice
