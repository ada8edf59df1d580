// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vector
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrBadSize is returned when a requested size is invalid (n <= 0) or a
	// source slice cannot provide the requested window (offset/len shortfall).
	ErrBadSize = errors.New("vector: invalid size")

	// ErrSizeMismatch indicates that two operands disagree on component count.
	// The wrapped message always names both sizes for diagnosis without rerun.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrIndexOutOfBounds indicates a component index outside [0, Size).
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrDivideByZero is returned by scalar division with an exactly-zero divisor.
	ErrDivideByZero = errors.New("vector: divide by zero")

	// ErrNonFinite signals a NaN or ±Inf component where finite values are
	// required (rounding/clamping/integer-conversion preconditions).
	ErrNonFinite = errors.New("vector: non-finite component")

	// ErrInvalidEpsilon is returned when a comparison tolerance is negative
	// or non-finite.
	ErrInvalidEpsilon = errors.New("vector: invalid epsilon")
)
