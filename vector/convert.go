// SPDX-License-Identifier: MIT
// Package vector: element-wise rounding, clamping and integer-upload
// conversions. Rounding-family operations require every component to be
// finite up front: the whole operation either applies or fails with
// ErrNonFinite before any component is touched.

package vector

import "math"

// Operation tags for conversion kernels.
const (
	opFloor    = "Floor"
	opCeil     = "Ceil"
	opRound    = "Round"
	opTruncate = "Truncate"
	opExpand   = "Expand"
	opToInt    = "ToInt32"
	opToUint   = "ToUint32"
)

// validateFinite checks every component is neither NaN nor ±Inf.
// Runs BEFORE any mutation so failed conversions leave v intact.
// Complexity: O(n).
func (v *Vector) validateFinite(method string) error {
	for _, x := range v.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return vectorErrorf(method, ErrNonFinite)
		}
	}

	return nil
}

// apply maps every component through fn in place.
func (v *Vector) apply(fn func(float64) float64) {
	for i := range v.data {
		v.data[i] = fn(v.data[i])
	}
}

// Floor rounds every component toward -Inf in place.
// Errors: ErrNonFinite (checked before mutation). Complexity: O(n).
func (v *Vector) Floor() error {
	if err := v.validateFinite(opFloor); err != nil {
		return err
	}
	v.apply(math.Floor)

	return nil
}

// Ceil rounds every component toward +Inf in place.
// Errors: ErrNonFinite. Complexity: O(n).
func (v *Vector) Ceil() error {
	if err := v.validateFinite(opCeil); err != nil {
		return err
	}
	v.apply(math.Ceil)

	return nil
}

// Round rounds every component to the nearest integer (half away from zero)
// in place. Errors: ErrNonFinite. Complexity: O(n).
func (v *Vector) Round() error {
	if err := v.validateFinite(opRound); err != nil {
		return err
	}
	v.apply(math.Round)

	return nil
}

// Truncate rounds every component toward zero in place.
// Errors: ErrNonFinite. Complexity: O(n).
func (v *Vector) Truncate() error {
	if err := v.validateFinite(opTruncate); err != nil {
		return err
	}
	v.apply(math.Trunc)

	return nil
}

// Expand rounds every component away from zero in place (the counterpart of
// Truncate: ceil for positive values, floor for negative).
// Errors: ErrNonFinite. Complexity: O(n).
func (v *Vector) Expand() error {
	if err := v.validateFinite(opExpand); err != nil {
		return err
	}
	v.apply(expand)

	return nil
}

// expand rounds a single value away from zero.
func expand(x float64) float64 {
	if x < 0 {
		return math.Floor(x)
	}

	return math.Ceil(x)
}

// ClampNonNegative raises every negative component to zero in place.
// No finite-value precondition: clamping NaN/Inf is well defined enough for
// the subsequent ToUint32 guard to catch the remainder.
// Complexity: O(n).
func (v *Vector) ClampNonNegative() {
	for i := range v.data {
		if v.data[i] < 0 {
			v.data[i] = 0
		}
	}
}

// ToInt32 exports the components truncated toward zero as int32 values —
// the signed integer-uniform upload format.
// Errors: ErrNonFinite when any component is NaN/±Inf.
// Complexity: O(n) time and memory.
func (v *Vector) ToInt32() ([]int32, error) {
	if err := v.validateFinite(opToInt); err != nil {
		return nil, err
	}
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = int32(math.Trunc(x))
	}

	return out, nil
}

// ToUint32 exports the components as uint32 values: negatives clamp to zero,
// the rest truncate toward zero — the unsigned integer-uniform upload format.
// Errors: ErrNonFinite when any component is NaN/±Inf.
// Complexity: O(n) time and memory.
func (v *Vector) ToUint32() ([]uint32, error) {
	if err := v.validateFinite(opToUint); err != nil {
		return nil, err
	}
	out := make([]uint32, len(v.data))
	for i, x := range v.data {
		t := math.Trunc(x)
		if t < 0 {
			t = 0 // clamp-non-negative before truncation per upload contract
		}
		out[i] = uint32(t)
	}

	return out, nil
}
