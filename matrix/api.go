// SPDX-License-Identifier: MIT
// Package matrix — public API facades (operator equivalents).
//
// Purpose:
//   - Go has no operator overloading; these functions stand in for a+b, a-b,
//     a*b, a*k and a==b. Each clones its left operand and delegates to the
//     in-place method on *Dense, so both surfaces share one kernel.
//   - Accept the Matrix interface; *Dense operands take a copy-free fast path,
//     any other implementation is read through At.
//
// Contract:
//   - Operands are never mutated; every successful call returns a fresh *Dense.
package matrix

import "fmt"

// asDense returns m as a *Dense. With own=true the result is always a fresh
// copy that the caller may mutate; otherwise a *Dense operand is returned as is.
//
// Errors:
//   - ErrNilMatrix for nil input; At errors from foreign implementations.
func asDense(m Matrix, own bool) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		if own {
			return d.Clone(), nil
		}

		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	d := newDense(rows, cols, DefaultValidateNaNInf)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// operands resolves a binary facade's inputs: an owned copy of a, and b as read-only.
func operands(a, b Matrix) (*Dense, *Dense, error) {
	left, err := asDense(a, true)
	if err != nil {
		return nil, nil, err
	}
	right, err := asDense(b, false)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) {
	left, right, err := operands(a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err = left.SumMatrix(right); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return left, nil
}

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	left, right, err := operands(a, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err = left.SubMatrix(right); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return left, nil
}

// Mul returns the matrix product a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
func Mul(a, b Matrix) (*Dense, error) {
	left, right, err := operands(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = left.MulMatrix(right); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return left, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	out, err := asDense(m, true)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err = out.MulNumber(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return out, nil
}

// Equal reports a == b under EqMatrix semantics (exact, shape-sensitive).
// Nil or unreadable operands compare unequal.
func Equal(a, b Matrix) bool {
	left, err := asDense(a, false)
	if err != nil {
		return false
	}
	right, err := asDense(b, false)
	if err != nil {
		return false
	}

	return left.EqMatrix(right)
}

// Transpose returns mᵀ as a new *Dense.
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m, false)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return d.Transpose(), nil
}

// Det returns the determinant of m (see Dense.Determinant).
func Det(m Matrix) (float64, error) {
	d, err := asDense(m, false)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d.Determinant()
}

// Inverse returns m⁻¹ (see Dense.InverseMatrix).
func Inverse(m Matrix) (*Dense, error) {
	d, err := asDense(m, false)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.InverseMatrix()
}
