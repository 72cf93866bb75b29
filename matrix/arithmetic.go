// SPDX-License-Identifier: MIT
// Package matrix: equality and in-place arithmetic on *Dense.
//
// Purpose:
//   - EqMatrix, SumMatrix, SubMatrix, MulNumber, MulMatrix mutate (or inspect)
//     the receiver; the non-mutating operator equivalents live in api.go.
//
// Contract:
//   - Validation precedes the first write: a failed call leaves the receiver
//     bit-for-bit unchanged.
//   - Loop orders are fixed (row-major; dot products accumulate k ascending),
//     so results are reproducible across runs and platforms.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSum        = "SumMatrix"
	opSub        = "SubMatrix"
	opMulNumber  = "MulNumber"
	opMulMatrix  = "MulMatrix"
	opTranspose  = "Transpose"
	opMinor      = "Minor"
	opDet        = "Determinant"
	opComplement = "CalcComplements"
	opInverse    = "InverseMatrix"
	opTrace      = "Trace"
	opAdd        = "Add"
	opScale      = "Scale"
	opMul        = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EqMatrix reports whether m and other have the same shape and identical
// elements under IEEE-754 equality (no tolerance).
//
// Behavior highlights:
//   - Two empty matrices are equal; a nil other is never equal.
//   - +0 and -0 compare equal; a NaN cell makes the matrices unequal.
//
// Complexity: O(r*c), early exit on first mismatch.
func (m *Dense) EqMatrix(other *Dense) bool {
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// SumMatrix adds other into m elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
func (m *Dense) SumMatrix(other *Dense) error {
	return m.addSigned(other, +1, opSum)
}

// SubMatrix subtracts other from m elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
func (m *Dense) SubMatrix(other *Dense) error {
	return m.addSigned(other, -1, opSub)
}

// addSigned computes m = m + sign*other for sign ∈ {+1, -1}.
// Negation is exact in IEEE-754, so a + (-1*b) is bitwise a - b.
//
// Implementation:
//   - Stage 1: ValidateSameShape(m, other).
//   - Stage 2: under the finite-only policy, pre-scan every sum.
//   - Stage 3: single flat loop writing into m.data (safe when other == m).
func (m *Dense) addSigned(other *Dense, sign float64, opTag string) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opTag, err)
	}
	if m.validateNaNInf {
		for k := range m.data {
			if m.rejects(m.data[k] + sign*other.data[k]) {
				return denseErrorf(opTag, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	for k := range m.data {
		m.data[k] += sign * other.data[k]
	}

	return nil
}

// MulNumber scales every element of m by alpha.
// Without the finite-only policy it always succeeds; with it, a non-finite
// product returns ErrNaNInf and m is left unchanged.
func (m *Dense) MulNumber(alpha float64) error {
	if m.validateNaNInf {
		for k := range m.data {
			if m.rejects(m.data[k] * alpha) {
				return denseErrorf(opMulNumber, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	for k := range m.data {
		m.data[k] *= alpha
	}

	return nil
}

// MulMatrix replaces m with the product m·other.
// MAIN DESCRIPTION:
//   - Standard (r×n)·(n×p) → (r×p) product.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols() == other.Rows()).
//   - Stage 2: compute every dot product into a fresh buffer.
//   - Stage 3: policy scan, then swap buffer and column count into m.
//
// Behavior highlights:
//   - The full product exists before m is touched, so m.MulMatrix(m) is safe.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*n*p), Space O(r*p).
func (m *Dense) MulMatrix(other *Dense) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMulMatrix, err)
	}

	rows, inner, cols := m.r, m.c, other.c
	buf := make([]float64, rows*cols)

	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				// Explicit conversion forbids FMA fusion; products round individually.
				sum += float64(m.data[i*inner+k] * other.data[k*cols+j])
			}
			if m.rejects(sum) {
				return denseErrorf(opMulMatrix, i, j, ErrNaNInf)
			}
			buf[i*cols+j] = sum
		}
	}
	m.c, m.data = cols, buf

	return nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare, ErrEmpty.
func (m *Dense) Trace() (float64, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var tr float64
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}
