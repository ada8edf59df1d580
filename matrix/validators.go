// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/compatibility checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite is the only O(rows*cols) validator; the rest are O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → ...).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// The wrapped message names both shapes for diagnosis without rerun.
//
// Returns nil or wrapped ErrIncompatibleDimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible: %dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateResultShape ensures dst declares exactly rows × cols — the
// multiply-destination contract.
// Assumes dst is not nil.
//
// Errors: ErrResultSizeMismatch.
// Complexity: O(1).
func ValidateResultShape(dst Matrix, rows, cols int) error {
	if dst.Rows() != rows || dst.Cols() != cols {
		return fmt.Errorf("ValidateResultShape: have %dx%d, want %dx%d: %w",
			dst.Rows(), dst.Cols(), rows, cols, ErrResultSizeMismatch)
	}

	return nil
}

// ValidateEpsilon ensures a comparison tolerance is finite and non-negative.
//
// Errors: ErrInvalidEpsilon.
// Complexity: O(1).
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return validatorErrorf("ValidateEpsilon", ErrInvalidEpsilon)
	}

	return nil
}

// ValidateFinite scans every element of m and rejects NaN/±Inf.
// Used as the precondition of rounding/clamping/integer conversions and of
// strict ingestion (WithValidateNaNInf).
//
// Errors: ErrNilMatrix, ErrNonFinite.
// Complexity: O(rows*cols).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	// Fast path: scan the flat buffer of in-package concrete types.
	if data := rawData(m); data != nil {
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNonFinite)
			}
		}

		return nil
	}

	// Fallback: interface path with fixed col→row order.
	var v float64
	var err error
	for col := 0; col < m.Cols(); col++ {
		for row := 0; row < m.Rows(); row++ {
			v, err = m.At(col, row)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNonFinite)
			}
		}
	}

	return nil
}

// validateSlice rejects NaN/±Inf in a raw ingestion window.
// Complexity: O(len(window)).
func validateSlice(tag string, window []float64) error {
	for _, v := range window {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, ErrNonFinite)
		}
	}

	return nil
}

// rawData exposes the flat column-major buffer of in-package concrete types
// for fast-path kernels, or nil for foreign Matrix implementations.
func rawData(m Matrix) []float64 {
	switch t := m.(type) {
	case *Dense:
		return t.data
	case *Mat3:
		return t.data
	case *Mat4:
		return t.data
	default:
		return nil
	}
}
