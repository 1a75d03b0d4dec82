// SPDX-License-Identifier: MIT

// Package adapters: gorgonia.org/tensor bridge.
package adapters

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/avr914/xtensor/core"
)

// Tensor presents a gorgonia *tensor.Dense as a core.Buffered
// expression. The adapter aliases the tensor's flat backing: writes
// through it (or through any view built on it) mutate the tensor.
type Tensor struct {
	core.Strided
	t *tensor.Dense
}

// FromTensor wraps t. Only float64 tensors with a natively accessible
// flat backing are supported; anything else fails with ErrDType.
// Complexity: O(rank).
func FromTensor(t *tensor.Dense) (*Tensor, error) {
	if t == nil {
		return nil, fmt.Errorf("adapters: FromTensor: %w", ErrNilOperand)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("adapters: FromTensor dtype %v: %w", t.Dtype(), ErrDType)
	}
	data, ok := t.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("adapters: FromTensor backing %T: %w", t.Data(), ErrDType)
	}
	s, err := core.NewStrided(data, []int(t.Shape()), t.Strides(), 0)
	if err != nil {
		return nil, fmt.Errorf("adapters: FromTensor: %w", err)
	}

	return &Tensor{Strided: *s, t: t}, nil
}

// Tensor returns the wrapped gorgonia tensor.
func (a *Tensor) Tensor() *tensor.Dense { return a.t }

// CloneExpression implements core.Cloneable by deep-copying the
// wrapped tensor.
func (a *Tensor) CloneExpression() core.Expression {
	c, ok := a.t.Clone().(*tensor.Dense)
	if !ok {
		// *tensor.Dense.Clone always yields *tensor.Dense.
		panic(fmt.Sprintf("adapters: clone of *tensor.Dense yielded %T", a.t.Clone()))
	}
	na, err := FromTensor(c)
	if err != nil {
		panic(fmt.Sprintf("adapters: clone re-wrap: %v", err))
	}

	return na
}
