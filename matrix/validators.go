// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Every kernel runs all of its validators before its first write, so a
//    failed call never leaves a partially mutated receiver.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Each validator returns its sentinel tagged with the validator name.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports both an untyped nil interface and a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil (including typed nil *Dense).
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a·b.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows() == Cols().
// An empty (0×0) matrix passes; pair with ValidateNotEmpty where elements are required.
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateNotEmpty ensures m holds at least one element.
func ValidateNotEmpty(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotEmpty", ErrNilMatrix)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmpty)
	}

	return nil
}

// validateSquareNonEmpty is the shared guard of Determinant, CalcComplements,
// InverseMatrix and Trace: square first, then non-empty.
func validateSquareNonEmpty(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateNotEmpty(m)
}
