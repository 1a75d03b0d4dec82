// Package adapters bridges third-party containers into the xtensor
// expression contracts, so views can slice them in place:
//
//   - Tensor wraps a gorgonia.org/tensor *Dense (float64 only) as a
//     core.Buffered expression over its native flat backing.
//   - Matrix wraps a gonum.org/v1/gonum/mat *Dense as a rank-2
//     core.Buffered expression over its raw BLAS storage, leading
//     dimension included.
//
// Both adapters alias the foreign container's storage — writes through
// a view of an adapter mutate the original tensor or matrix — and both
// embed core.Strided, so element access and stepping are the shared
// core implementations.
package adapters
