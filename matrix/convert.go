// SPDX-License-Identifier: MIT
// Package matrix: element-wise rounding, clamping and integer-upload
// conversions, mirroring the vector package semantics. Rounding-family
// kernels require every element to be finite up front: the operation either
// fully applies or fails with ErrNonFinite before any element is touched.

package matrix

import "math"

// Operation tags for conversion kernels.
const (
	opFloor    = "Floor"
	opCeil     = "Ceil"
	opRound    = "Round"
	opTruncate = "Truncate"
	opExpand   = "Expand"
	opClamp    = "ClampNonNegative"
	opToInt    = "ToInt32"
	opToUint   = "ToUint32"
)

// applyElementwise validates finiteness, then maps every element of m
// through fn in place (flat fast path or At/Set fallback).
// Complexity: O(rows*cols).
func applyElementwise(tag string, m Matrix, fn func(float64) float64) error {
	if err := ValidateFinite(m); err != nil {
		return matrixErrorf(tag, err)
	}
	buf, err := readAll(tag, m)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] = fn(buf[i])
	}

	return writeAll(tag, m, buf)
}

// Floor rounds every element toward -Inf in place.
// Errors: ErrNilMatrix, ErrNonFinite (checked before mutation).
func Floor(m Matrix) error { return applyElementwise(opFloor, m, math.Floor) }

// Ceil rounds every element toward +Inf in place.
// Errors: ErrNilMatrix, ErrNonFinite.
func Ceil(m Matrix) error { return applyElementwise(opCeil, m, math.Ceil) }

// Round rounds every element to the nearest integer (half away from zero)
// in place. Errors: ErrNilMatrix, ErrNonFinite.
func Round(m Matrix) error { return applyElementwise(opRound, m, math.Round) }

// Truncate rounds every element toward zero in place.
// Errors: ErrNilMatrix, ErrNonFinite.
func Truncate(m Matrix) error { return applyElementwise(opTruncate, m, math.Trunc) }

// Expand rounds every element away from zero in place (Truncate's
// counterpart). Errors: ErrNilMatrix, ErrNonFinite.
func Expand(m Matrix) error {
	return applyElementwise(opExpand, m, func(x float64) float64 {
		if x < 0 {
			return math.Floor(x)
		}

		return math.Ceil(x)
	})
}

// ClampNonNegative raises every negative element to zero in place.
// No finite-value precondition; the ToUint32 guard catches the remainder.
// Errors: ErrNilMatrix.
func ClampNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opClamp, err)
	}
	buf, err := readAll(opClamp, m)
	if err != nil {
		return err
	}
	for i := range buf {
		if buf[i] < 0 {
			buf[i] = 0
		}
	}

	return writeAll(opClamp, m, buf)
}

// ToInt32 exports the elements truncated toward zero as a column-major
// int32 slice — the signed integer-uniform upload format.
// Errors: ErrNilMatrix, ErrNonFinite.
// Complexity: O(rows*cols) time and memory.
func ToInt32(m Matrix) ([]int32, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opToInt, err)
	}
	buf, err := readAll(opToInt, m)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(buf))
	for i, x := range buf {
		out[i] = int32(math.Trunc(x))
	}

	return out, nil
}

// ToUint32 exports the elements as a column-major uint32 slice: negatives
// clamp to zero, the rest truncate toward zero.
// Errors: ErrNilMatrix, ErrNonFinite.
// Complexity: O(rows*cols) time and memory.
func ToUint32(m Matrix) ([]uint32, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opToUint, err)
	}
	buf, err := readAll(opToUint, m)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(buf))
	for i, x := range buf {
		t := math.Trunc(x)
		if t < 0 {
			t = 0
		}
		out[i] = uint32(t)
	}

	return out, nil
}
