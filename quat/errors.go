// SPDX-License-Identifier: MIT
// Package quat: sentinel error set (unified, consistent).
// All operations return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is.

package quat

import "errors"

var (
	// ErrCannotInvertZero is returned by Inverse on the zero quaternion
	// (0,0,0,0) — a valid value but not a valid rotation.
	ErrCannotInvertZero = errors.New("quat: cannot invert zero quaternion")

	// ErrBadSize is returned when a flat-array window cannot provide or
	// receive the four components.
	ErrBadSize = errors.New("quat: invalid size")

	// ErrBadVector indicates a nil vector argument or one whose component
	// count does not match the operation (axes and rotated vectors are
	// 3-component).
	ErrBadVector = errors.New("quat: vector must have 3 components")

	// ErrNilMatrix indicates a nil matrix argument to a conversion.
	ErrNilMatrix = errors.New("quat: nil matrix")

	// ErrInvalidEpsilon is returned when a comparison tolerance is negative
	// or non-finite.
	ErrInvalidEpsilon = errors.New("quat: invalid epsilon")
)
