// SPDX-License-Identifier: MIT

// Package quat: conversions between quaternions and the other rotation
// representations (axis-angle, Euler angles, rotation matrices).
//
// Each conversion pair is documented with its degenerate cases up front:
// which inputs cannot round-trip and what the operation returns for them.
package quat

import (
	"math"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/vector"
)

// axis3Size is the component count required of rotation axes.
const axis3Size = 3

// readAxis validates and copies a 3-component vector argument into a local
// array. Errors: ErrBadVector. Complexity: O(1).
func readAxis(method string, v *vector.Vector) ([axis3Size]float64, error) {
	var out [axis3Size]float64
	if v == nil || v.Size() != axis3Size {
		return out, quatErrorf(method, ErrBadVector)
	}
	if err := v.CopyTo(out[:], 0); err != nil {
		return out, quatErrorf(method, err)
	}

	return out, nil
}

// ---------- Axis-angle ----------

// FromAxisAngle builds the rotation of angle radians about axis.
// The axis is normalized internally; a zero-length axis yields the identity
// rotation (there is no direction to rotate about).
//
// Errors: ErrBadVector when axis is nil or not 3-component.
// Complexity: O(1).
func FromAxisAngle(axis *vector.Vector, angle float64) (Quaternion, error) {
	a, err := readAxis("FromAxisAngle", axis)
	if err != nil {
		return Quaternion{}, err
	}
	lenSq := a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
	if lenSq == 0 {
		return Identity(), nil
	}
	inv := 1 / math.Sqrt(lenSq)
	s, c := math.Sincos(angle / 2)

	return Quaternion{X: a[0] * inv * s, Y: a[1] * inv * s, Z: a[2] * inv * s, W: c}, nil
}

// ToAxisAngle extracts the rotation axis and angle, with the angle normalized
// into [0, π] (the equivalent shorter representation is chosen when the raw
// half-angle exceeds π/2, negating the axis to compensate).
//
// Near-identity rotations (sin(θ/2) below axisSineEps) have no recoverable
// axis; the conventional +Z axis and a zero angle are returned.
// The receiver is normalized internally, so non-unit inputs are accepted.
// Complexity: O(1).
func (q Quaternion) ToAxisAngle() (*vector.Vector, float64) {
	n := q.Normalize()
	w := math.Max(-1, math.Min(1, n.W))
	s := math.Sqrt(1 - w*w)
	if s < axisSineEps {
		return vector.Vec3(0, 0, 1), 0
	}
	angle := 2 * math.Acos(w)
	x, y, z := n.X/s, n.Y/s, n.Z/s
	if angle > math.Pi {
		angle = 2*math.Pi - angle
		x, y, z = -x, -y, -z
	}

	return vector.Vec3(x, y, z), angle
}

// ---------- Euler angles ----------

// FromEuler builds the rotation from Euler angles in radians: pitch about
// +Y, yaw about +Z, roll about +X, composed yaw ∘ pitch ∘ roll (roll applied
// first). Complexity: O(1).
func FromEuler(pitch, yaw, roll float64) Quaternion {
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	sr, cr := math.Sincos(roll / 2)

	return Quaternion{
		X: cy*cp*sr - sy*sp*cr,
		Y: cy*sp*cr + sy*cp*sr,
		Z: sy*cp*cr - cy*sp*sr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// ToEuler extracts (pitch, yaw, roll) in radians, inverting FromEuler.
// The receiver is normalized internally.
//
// Gimbal lock: when |sin(pitch)| reaches gimbalLockSin the pitch is clamped
// to ±π/2 and yaw/roll stop being independent (only their combination is
// observable). The whole residual turn is folded into yaw with roll fixed
// at zero, which keeps the round trip through FromEuler exact.
// Complexity: O(1).
func (q Quaternion) ToEuler() (pitch, yaw, roll float64) {
	n := q.Normalize()
	x, y, z, w := n.X, n.Y, n.Z, n.W

	sinPitch := 2 * (w*y - z*x)
	if math.Abs(sinPitch) >= gimbalLockSin {
		pitch = math.Copysign(math.Pi/2, sinPitch)
		yaw = -math.Copysign(2*math.Atan2(x, w), sinPitch)
		roll = 0

		return pitch, yaw, roll
	}

	pitch = math.Asin(sinPitch)
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	return pitch, yaw, roll
}

// ---------- Rotation matrices ----------

// rotationBlock expands the normalized quaternion into the nine entries of
// its rotation matrix, returned column-major. The zero quaternion expands to
// the identity block. Complexity: O(1).
func (q Quaternion) rotationBlock() [9]float64 {
	n := q.Normalize()
	if n.LengthSquared() == 0 {
		return [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	x, y, z, w := n.X, n.Y, n.Z, n.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	// Column-major: entry (row r, col c) at index c*3+r.
	return [9]float64{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
}

// ToMat3 expands the rotation into a fresh 3×3 matrix.
// The zero quaternion yields the identity matrix. Complexity: O(1).
func (q Quaternion) ToMat3() *matrix.Mat3 {
	b := q.rotationBlock()
	m, err := matrix.Mat3FromSlice(b[:], 0)
	if err != nil {
		// Unreachable: the window is statically 9 values at offset 0.
		panic(err)
	}

	return m
}

// ToMat4 expands the rotation into a fresh 4×4 matrix: the 3×3 rotation
// block, a zero translation column and m33 = 1.
// The zero quaternion yields the identity matrix. Complexity: O(1).
func (q Quaternion) ToMat4() *matrix.Mat4 {
	b := q.rotationBlock()
	flat := [16]float64{
		b[0], b[1], b[2], 0,
		b[3], b[4], b[5], 0,
		b[6], b[7], b[8], 0,
		0, 0, 0, 1,
	}
	m, err := matrix.Mat4FromSlice(flat[:], 0)
	if err != nil {
		// Unreachable: the window is statically 16 values at offset 0.
		panic(err)
	}

	return m
}

// FromMat3 extracts the quaternion of a 3×3 rotation matrix using the
// four-branch trace method: the branch is chosen by the largest diagonal
// entry so the square root argument stays well away from zero.
//
// The input is assumed orthonormal; the result is normalized to absorb
// drift. An all-zero matrix yields the identity rotation.
// Errors: ErrNilMatrix.
// Complexity: O(1).
func FromMat3(m *matrix.Mat3) (Quaternion, error) {
	if m == nil {
		return Quaternion{}, quatErrorf("FromMat3", ErrNilMatrix)
	}
	var buf [9]float64
	if err := m.CopyTo(buf[:], 0); err != nil {
		return Quaternion{}, quatErrorf("FromMat3", err)
	}

	return fromRotationBlock(buf), nil
}

// FromMat4 extracts the quaternion of the upper-left 3×3 rotation block of a
// 4×4 transform; translation and perspective rows are ignored.
// Errors: ErrNilMatrix.
// Complexity: O(1).
func FromMat4(m *matrix.Mat4) (Quaternion, error) {
	if m == nil {
		return Quaternion{}, quatErrorf("FromMat4", ErrNilMatrix)
	}
	var flat [16]float64
	if err := m.CopyTo(flat[:], 0); err != nil {
		return Quaternion{}, quatErrorf("FromMat4", err)
	}
	block := [9]float64{
		flat[0], flat[1], flat[2],
		flat[4], flat[5], flat[6],
		flat[8], flat[9], flat[10],
	}

	return fromRotationBlock(block), nil
}

// fromRotationBlock runs the trace extraction on a column-major 3×3 block.
// Local naming: mRC is the entry at row R, column C (b[C*3+R]).
func fromRotationBlock(b [9]float64) Quaternion {
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false

			break
		}
	}
	if allZero {
		return Identity()
	}

	m00, m10, m20 := b[0], b[1], b[2]
	m01, m11, m21 := b[3], b[4], b[5]
	m02, m12, m22 := b[6], b[7], b[8]

	var q Quaternion
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		q = Quaternion{
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
			W: s / 4,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1 + m00 - m11 - m22)
		q = Quaternion{
			X: s / 4,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1 + m11 - m00 - m22)
		q = Quaternion{
			X: (m01 + m10) / s,
			Y: s / 4,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * math.Sqrt(1 + m22 - m00 - m11)
		q = Quaternion{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: s / 4,
			W: (m10 - m01) / s,
		}
	}

	// Orthonormal input makes q unit already; normalize to absorb drift.
	return q.Normalize()
}
