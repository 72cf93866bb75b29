// Package matrix provides a dense, row-major float64 matrix value type.
//
// The package provides:
//
//   - Dense: an exclusively owned r×c buffer with explicit value semantics
//     (Clone, Move, CopyFrom) and in-place resizing (SetRows, SetCols).
//   - In-place arithmetic methods (SumMatrix, SubMatrix, MulNumber, MulMatrix)
//     and exact equality (EqMatrix).
//   - Cofactor linear algebra built on Minor: Determinant (Laplace expansion),
//     CalcComplements and InverseMatrix.
//   - Non-mutating facades standing in for operators: Add, Sub, Mul, Scale, Equal.
//
// Errors are sentinels grouped under three kinds (ErrInvalidArgument,
// ErrLogic, ErrOutOfRange) and are matched with errors.Is.
//
// Determinant is O(n!). It targets small matrices; callers bound the order.
//
// A Dense is not safe for concurrent mutation; synchronize externally.
package matrix
