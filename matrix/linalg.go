// SPDX-License-Identifier: MIT
// Package matrix: cofactor-based linear algebra on *Dense.
//
// Purpose:
//   - Transpose, Minor, Determinant, CalcComplements, InverseMatrix.
//   - Determinant, cofactors and inverse are all built on Minor, so the three
//     share one arithmetic path and agree with each other exactly.
//
// Complexity:
//   - Determinant is a Laplace expansion along row 0: O(n!) time.
//     Callers bound the order themselves (the CLI does via max-order).
//   - CalcComplements/InverseMatrix run n² determinants of order n-1.
//
// Determinism:
//   - Fixed expansion row (0), fixed accumulation order (j ascending), and
//     explicit float64 conversions that forbid FMA contraction. Integer-valued
//     inputs therefore produce exact integer cofactors.
//
// Non-goals:
//   - No pivoting and no LU path.

package matrix

import "fmt"

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Transpose returns a new c×r matrix with res[j][i] = m[i][j].
// Pure: m is not modified; the numeric policy is inherited.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	res := newDense(m.c, m.r, m.validateNaNInf)

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Minor returns the (r-1)×(c-1) submatrix with row skipRow and column
// skipCol deleted.
// MAIN DESCRIPTION:
//   - Building block of Determinant and CalcComplements.
//
// Implementation:
//   - Stage 1: bounds-check skip indices (negative or ≥ dimension → ErrOutOfRange).
//   - Stage 2: collect the kept row/column index sets in ascending order.
//   - Stage 3: materialize via Induced.
//
// Errors:
//   - ErrOutOfRange for a bad skip index.
//   - ErrInvalidDimensions when the result would have a zero dimension
//     (a 1×N or N×1 source).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Minor(skipRow, skipCol int) (*Dense, error) {
	if skipRow < 0 || skipRow >= m.r {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, skipRow, skipCol, ErrOutOfRange))
	}
	if skipCol < 0 || skipCol >= m.c {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, skipRow, skipCol, ErrOutOfRange))
	}

	res, err := m.Induced(keepIndices(m.r, skipRow), keepIndices(m.c, skipCol))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// keepIndices returns 0..n-1 without skip, ascending.
func keepIndices(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			idx = append(idx, k)
		}
	}

	return idx
}

// Determinant returns det(m) by Laplace expansion along row 0.
// MAIN DESCRIPTION:
//   - 1×1: the sole element.
//   - 2×2: ad − bc.
//   - n×n: Σ_j m[0][j] · (−1)^j · det(Minor(0, j)), j ascending.
//
// Errors:
//   - ErrNonSquare, ErrEmpty (both of kind ErrLogic).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Dense) Determinant() (float64, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.laplace()
}

// laplace is the recursive body of Determinant; m is square and non-empty.
func (m *Dense) laplace() (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return float64(m.data[0]*m.data[3]) - float64(m.data[1]*m.data[2]), nil
	}

	var det float64
	for j := 0; j < m.c; j++ {
		minor, err := m.Minor(0, j)
		if err != nil {
			return 0, err
		}
		sub, err := minor.laplace()
		if err != nil {
			return 0, err
		}
		det += float64(m.data[j] * cofactorSign(0, j) * sub)
	}

	return det, nil
}

// CalcComplements returns the cofactor matrix:
// res[i][j] = (−1)^(i+j) · det(Minor(i, j)).
//
// Errors:
//   - ErrNonSquare, ErrEmpty.
//   - ErrInvalidDimensions for a 1×1 input: its only minor would be 0×0.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func (m *Dense) CalcComplements() (*Dense, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opComplement, err)
	}

	n := m.r
	res := newDense(n, n, m.validateNaNInf)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minor, err := m.Minor(i, j)
			if err != nil {
				return nil, matrixErrorf(opComplement, err)
			}
			det, err := minor.laplace()
			if err != nil {
				return nil, matrixErrorf(opComplement, err)
			}
			res.data[i*n+j] = cofactorSign(i, j) * det
		}
	}

	return res, nil
}

// InverseMatrix returns m⁻¹ = Transpose(CalcComplements()) · (1/det).
// MAIN DESCRIPTION:
//   - Adjugate formula; exact for integer inputs whose determinant is ±1.
//
// Implementation:
//   - Stage 1: square and non-empty checks.
//   - Stage 2: det == 0 (exact comparison, no epsilon) → ErrSingular.
//   - Stage 3: cofactors → transpose → scale by 1/det.
//
// Errors:
//   - ErrNonSquare, ErrEmpty, ErrSingular (all of kind ErrLogic);
//     ErrNaNInf when the policy is on and 1/det overflows.
//   - ErrInvalidDimensions for a non-singular 1×1 input (see CalcComplements).
func (m *Dense) InverseMatrix() (*Dense, error) {
	if err := validateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := m.laplace()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	comp, err := m.CalcComplements()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv := comp.Transpose()
	if err = inv.MulNumber(1 / det); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
