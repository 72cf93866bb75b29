// Package lvmatrix is a small dense-matrix toolkit: exact row-major storage,
// value-semantic copies, arithmetic and the classic cofactor-based linear
// algebra (determinant, complements, inverse).
//
// 🚀 What is inside?
//
//	• matrix/             — Dense type, operator facades, validators, options
//	• internal/matrixio/  — YAML/JSON documents of named matrices
//	• internal/config/    — MATRIXCALC_* environment settings
//	• cmd/matrixcalc/     — command-line calculator over a YAML document
//
// ✨ Guarantees
//
//   - Every Dense exclusively owns its buffer; Clone copies, Move transfers.
//   - Failing operations leave the receiver untouched.
//   - Errors are classified by errors.Is against ErrInvalidArgument,
//     ErrLogic and ErrOutOfRange.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := a.Determinant() // -2
//
// Determinant and inverse use Laplace expansion, which is O(n!): they are
// exact for small integer matrices and meant for orders up to about 10.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
