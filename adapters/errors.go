package adapters

import "errors"

var (
	// ErrNilOperand indicates a nil tensor or matrix handed to an adapter.
	ErrNilOperand = errors.New("adapters: operand is nil")

	// ErrDType indicates a tensor whose element type is not float64 or
	// whose backing is not natively accessible as a []float64.
	ErrDType = errors.New("adapters: tensor backing must be accessible as []float64")
)
