// SPDX-License-Identifier: MIT
// Package matrix: literal builders and exporters for Dense.

package matrix

import "fmt"

const (
	ctxFromRows = "NewFromRows"
	ctxIdentity = "NewIdentity"
)

// NewFromRows builds a Dense from row literals, copying every value.
// MAIN DESCRIPTION:
//   - rows[i][j] becomes element (i, j); the input slices are not retained.
//
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged input (ErrDimensionMismatch, reports the first bad row).
//   - Stage 3: copy row by row through the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (policy, with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	o := gatherOptions(opts...)
	m := newDense(r, c, o.validateNaNInf)

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.rejects(rows[i][j]) {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// RawRows exports the contents as freshly allocated row slices.
// The empty matrix yields an empty (non-nil) outer slice.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}
