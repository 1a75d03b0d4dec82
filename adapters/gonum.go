// SPDX-License-Identifier: MIT

// Package adapters: gonum.org/v1/gonum/mat bridge.
package adapters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/avr914/xtensor/core"
)

// Matrix presents a gonum *mat.Dense as a rank-2 core.Buffered
// expression. The raw BLAS storage is aliased directly, leading
// dimension and all, so submatrix slices of the gonum matrix keep
// working: their stride simply exceeds their column count.
type Matrix struct {
	core.Strided
	m *mat.Dense
}

// FromDense wraps m.
// Complexity: O(1).
func FromDense(m *mat.Dense) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("adapters: FromDense: %w", ErrNilOperand)
	}
	raw := m.RawMatrix()
	s, err := core.NewStrided(raw.Data, []int{raw.Rows, raw.Cols}, []int{raw.Stride, 1}, 0)
	if err != nil {
		return nil, fmt.Errorf("adapters: FromDense: %w", err)
	}

	return &Matrix{Strided: *s, m: m}, nil
}

// Matrix returns the wrapped gonum matrix.
func (a *Matrix) Matrix() *mat.Dense { return a.m }

// CloneExpression implements core.Cloneable by deep-copying the
// wrapped matrix.
func (a *Matrix) CloneExpression() core.Expression {
	var c mat.Dense
	c.CloneFrom(a.m)
	na, err := FromDense(&c)
	if err != nil {
		panic(fmt.Sprintf("adapters: clone re-wrap: %v", err))
	}

	return na
}
