// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (possibly wrapped with call-site context) and tests match them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR KINDS
// -----------
// Three roots classify every failure. Specific sentinels wrap exactly one root,
// so callers may match either the precise cause or the broad kind:
//
//	errors.Is(err, ErrNonSquare) // precise
//	errors.Is(err, ErrLogic)     // kind
//
// Every message is prefixed with "matrix: ..." for easy grepping.

var (
	// ErrInvalidArgument is the kind of errors raised at construction or resize
	// time when a requested dimension (or stored value, under policy) is unacceptable.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrLogic is the kind of errors raised when an operation's mathematical
	// precondition is violated (shape mismatch, non-square input, singular input).
	ErrLogic = errors.New("matrix: logic error")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Ref and Minor return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sum/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrLogic)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrLogic)

	// ErrSingular is returned by InverseMatrix when the determinant is exactly zero.
	ErrSingular = fmt.Errorf("%w: determinant is zero", ErrLogic)

	// ErrEmpty signals that a 0×0 (default) matrix reached an operation that
	// needs at least one element.
	ErrEmpty = fmt.Errorf("%w: matrix is empty", ErrLogic)

	// ErrNilMatrix indicates that a nil matrix operand was passed.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrLogic)
)
