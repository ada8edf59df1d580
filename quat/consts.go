// SPDX-License-Identifier: MIT
// Package quat: named thresholds for the degenerate branches.
// Every near-zero or near-parallel test in the package routes through one of
// these constants so the cutoffs stay auditable in a single place.

package quat

const (
	// axisSineEps bounds sin(θ/2) below which an axis cannot be recovered
	// from a quaternion (the rotation is indistinguishable from identity).
	axisSineEps = 1e-6

	// slerpLinearDot is the |cos| threshold above which Slerp degrades to
	// normalized linear interpolation: the arc is so short that the
	// sin-ratio weights lose precision before the lerp error matters.
	slerpLinearDot = 0.9995

	// parallelDot is the |cos| threshold at which two directions are
	// treated as parallel (FromBetweenVectors) or two orientations as
	// equal (AngleTo snaps the angle to zero).
	parallelDot = 0.999999

	// gimbalLockSin is the |sin(pitch)| threshold at which ToEuler declares
	// gimbal lock. Slightly below 1 so inputs built from an exact ±π/2 pitch
	// still land in the pole branch after rounding.
	gimbalLockSin = 1 - 1e-9
)
