// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension compatibility -> result shape
// -> squareness -> numeric policy (NotInvertible / NonFinite / Epsilon).

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (rows or
	// cols <= 0) or a backing buffer cannot satisfy rows*cols, including
	// flat-array import windows (offset/len shortfall). A buffer whose
	// length disagrees with rows*cols is a constructed-but-invalid state
	// and must be rejected at construction.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a column or row index is outside
	// the declared bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrIncompatibleDimensions indicates a multiply where a.Cols != b.Rows.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions")

	// ErrResultSizeMismatch indicates that a multiply destination does not
	// declare exactly a.Rows × b.Cols.
	ErrResultSizeMismatch = errors.New("matrix: result size mismatch")

	// ErrNonSquare signals that a square matrix was required (determinant,
	// inverse, in-place transpose) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned when the determinant is exactly zero.
	// Near-singular matrices (tiny but non-zero determinant) are legitimate
	// input with reduced precision; there is deliberately no epsilon here.
	ErrNotInvertible = errors.New("matrix: not invertible")

	// ErrTransposeType signals a transpose-type contract violation: the
	// concrete type declared no transpose type, or the declared type's
	// dimensions do not match the row/column swap (defensive check).
	ErrTransposeType = errors.New("matrix: transpose type contract violated")

	// ErrNonFinite signals a NaN or ±Inf value where finite values are
	// required (rounding/clamping/integer conversions, strict ingestion).
	ErrNonFinite = errors.New("matrix: non-finite value")

	// ErrInvalidEpsilon is returned when a comparison tolerance is negative
	// or non-finite.
	ErrInvalidEpsilon = errors.New("matrix: invalid epsilon")
)
