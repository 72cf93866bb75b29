// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & value semantics.
//
// Purpose:
//   - Own a single contiguous row-major buffer addressed as i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Provide value semantics explicitly: Clone (copy), Move (transfer), CopyFrom (assign).
//   - Resize in place (SetRows/SetCols) by building a new buffer and swapping it in.
//
// Ownership:
//   - A Dense never shares its buffer with another Dense. Every constructor,
//     Clone, CopyFrom and resize allocates; only Move hands a buffer over, and
//     it empties the source in the same step.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom: O(r*c);
//     Move: O(1); SetRows/SetCols: O(r'*c').
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRef     = "Ref"
	ctxApply   = "Apply"
	ctxSetRows = "SetRows"
	ctxSetCols = "SetCols"
	ctxInduce  = "Induced"
	ctxCopy    = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// sizeErrorf wraps a resize/constructor failure with the offending size.
func sizeErrorf(method string, n int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, n, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection (see options.go).
//
// The zero value is the empty matrix: 0×0 with no backing storage.
// It compares equal to other empty matrices and is rejected by every
// linear-algebra operation with ErrEmpty.
//
// A Dense is not safe for concurrent mutation.
type Dense struct {
	r, c           int       // row and column counts (0 only in the empty state)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewEmpty returns the default-constructed (0×0) matrix.
// Equivalent to new(Dense); provided for symmetry with NewDense.
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public dimensioned constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (kind ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.validateNaNInf), nil
}

// newDense allocates without validation; callers guarantee rows,cols >= 0.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills
		validateNaNInf: validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no elements (the default state,
// or a partially resized default such as 3×0).
func (m *Dense) IsEmpty() bool { return len(m.data) == 0 }

// Policy returns the effective options carried by this instance.
func (m *Dense) Policy() Options { return Options{validateNaNInf: m.validateNaNInf} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// rejects reports whether v violates this instance's numeric policy.
func (m *Dense) rejects(v float64) bool {
	return m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0))
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the policy is on and v is not finite.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.rejects(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Ref returns a writable reference to the element at (row, col).
// Writes through the pointer bypass the numeric policy.
//
// The pointer is valid until the next SetRows, SetCols, MulMatrix, CopyFrom,
// Apply or Move on m; after any of those it refers to a released buffer.
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, validateNaNInf: m.validateNaNInf}
	if m.data != nil {
		out.data = make([]float64, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// Move transfers the buffer into a new Dense and resets m to the empty state.
// After Move, m.Rows() == m.Cols() == 0; the numeric policy stays on m.
// Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, validateNaNInf: m.validateNaNInf}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// CopyFrom replaces m's shape, contents and policy with a deep copy of src.
// Self-assignment (m.CopyFrom(m)) is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopy, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	cp := src.Clone()
	m.r, m.c, m.data, m.validateNaNInf = cp.r, cp.c, cp.data, cp.validateNaNInf

	return nil
}

// SetRows changes the row count in place.
// MAIN DESCRIPTION:
//   - Shrinking truncates trailing rows; growing appends zero rows.
//
// Implementation:
//   - Stage 1: reject n<=0 (ErrInvalidDimensions); return early when unchanged.
//   - Stage 2: build a new n×c buffer, copy the overlapping rows, swap it in.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if n <= 0 {
		return sizeErrorf(ctxSetRows, n, ErrInvalidDimensions)
	}
	if n == m.r {
		return nil
	}
	m.reshape(n, m.c)

	return nil
}

// SetCols changes the column count in place.
// Shrinking truncates trailing columns of every row; growing zero-fills.
// Complexity: O(r*n).
func (m *Dense) SetCols(n int) error {
	if n <= 0 {
		return sizeErrorf(ctxSetCols, n, ErrInvalidDimensions)
	}
	if n == m.c {
		return nil
	}
	m.reshape(m.r, n)

	return nil
}

// reshape swaps in a rows×cols buffer holding the overlapping top-left
// sub-rectangle of the current contents; new cells are zero.
func (m *Dense) reshape(rows, cols int) {
	buf := make([]float64, rows*cols)
	keepR := min(rows, m.r)
	keepC := min(cols, m.c)

	var i int
	for i = 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf
}

// String renders rows as lines with comma-separated %g values.
// Intended for logs and debugging; the empty matrix renders as "".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v).
// MAIN DESCRIPTION:
//   - All-or-nothing map: results go to a scratch buffer that replaces the
//     current one only when every value passed the numeric policy.
//
// Errors:
//   - ErrNaNInf (wrapped with coordinates) when f produced a non-finite value
//     under the finite-only policy; m is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	buf := make([]float64, len(m.data))

	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.rejects(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			buf[base+j] = nv
		}
	}
	m.data = buf

	return nil
}

// Induced materializes a copy submatrix from explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed, order kept).
//
// Implementation:
//   - Stage 1: reject empty index sets (a non-default Dense is at least 1×1).
//   - Stage 2: bounds-check every index before allocating.
//   - Stage 3: nested loops with direct offset math.
//
// Errors:
//   - ErrInvalidDimensions for an empty index set; ErrOutOfRange for a bad index.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %dx%d: %w", ctxInduce, rp, cp, ErrInvalidDimensions)
	}
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res := newDense(rp, cp, m.validateNaNInf)
	var i, j, src int
	for i = 0; i < rp; i++ {
		src = rowsIdx[i] * m.c
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}
