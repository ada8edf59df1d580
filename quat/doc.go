// SPDX-License-Identifier: MIT

// Package quat implements unit-quaternion rotations: construction from and
// conversion to axis-angle, Euler angles and rotation matrices, Hamilton
// algebra, spherical interpolation and vector rotation.
//
// # What lives here
//
//   - Quaternion — an immutable VALUE type (x,y,z,w) with w the scalar part.
//     Every operation returns a new value; there are no in-place mutators.
//   - Conversions — FromAxisAngle/ToAxisAngle, FromEuler/ToEuler,
//     FromMat3/FromMat4/ToMat3/ToMat4 (four-branch trace extraction).
//   - Interpolation — Lerp, Nlerp, Slerp (shorter arc, small-angle fallback),
//     Squad, AngleTo, RotateTowards.
//   - Rotation — RotateVector, FromBetweenVectors, LookAt.
//
// # Conventions
//
//   - Rotation by angle θ about unit axis n is (n·sin(θ/2), cos(θ/2)).
//     Composition follows the Hamilton product: (a.Mul(b)).RotateVector(v)
//     applies b first, then a.
//   - Euler angles are (pitch about Y, yaw about Z, roll about X), composed
//     yaw ∘ pitch ∘ roll. ToEuler clamps pitch into [-π/2, π/2] at gimbal
//     lock.
//   - Matrix conversions target the column-major matrix package types; only
//     the rotation block is read or written (ToMat4 fills the translation
//     column with zeros and m33 with 1).
//
// # Numeric policy
//
//   - The zero quaternion (0,0,0,0) is a valid VALUE but not a rotation:
//     Normalize leaves it unchanged, Inverse fails with ErrCannotInvertZero,
//     ToMat3/ToMat4 produce the identity matrix.
//   - Degenerate branches use named thresholds (axisSineEps, slerpLinearDot,
//     parallelDot) rather than magic literals; see consts.go.
//   - Equals is exact (NaN never equals anything); EqualsEpsilon validates
//     its tolerance (ErrInvalidEpsilon).
//
// All sentinel errors are matched with errors.Is; operations wrap them with
// an operation tag ("Quaternion.Slerp: ...").
package quat
