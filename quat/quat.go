// SPDX-License-Identifier: MIT

// Package quat: the Quaternion value type, constructors, the flat-array
// boundary and the Hamilton algebra. Quaternion is deliberately a VALUE type
// (unlike the vector and matrix packages): four floats copy cheaper than a
// pointer dereferences, and value semantics make every operation trivially
// aliasing-safe.
package quat

import (
	"fmt"
	"math"
)

// quatLen is the flat component count of a quaternion (x, y, z, w).
const quatLen = 4

// quatErrorf wraps an underlying error with method context.
func quatErrorf(method string, err error) error {
	return fmt.Errorf("Quaternion.%s: %w", method, err)
}

// Quaternion is a rotation (or a general Hamilton number) with vector part
// (X, Y, Z) and scalar part W. The zero value is the ZERO quaternion, not a
// rotation; use Identity for the no-op rotation.
type Quaternion struct {
	X, Y, Z, W float64
}

// New builds a quaternion from its four components. Complexity: O(1).
func New(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Identity returns the identity rotation (0, 0, 0, 1). Complexity: O(1).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromSlice imports the four components (x, y, z, w order) from src starting
// at offset. Errors: ErrBadSize on any window violation. Complexity: O(1).
func FromSlice(src []float64, offset int) (Quaternion, error) {
	if offset < 0 || offset+quatLen > len(src) {
		return Quaternion{}, quatErrorf("FromSlice", ErrBadSize)
	}
	w := src[offset : offset+quatLen]

	return Quaternion{X: w[0], Y: w[1], Z: w[2], W: w[3]}, nil
}

// CopyTo writes the four components (x, y, z, w order) into dst starting at
// offset. Errors: ErrBadSize when dst cannot hold the window. Complexity: O(1).
func (q Quaternion) CopyTo(dst []float64, offset int) error {
	if offset < 0 || offset+quatLen > len(dst) {
		return quatErrorf("CopyTo", ErrBadSize)
	}
	dst[offset] = q.X
	dst[offset+1] = q.Y
	dst[offset+2] = q.Z
	dst[offset+3] = q.W

	return nil
}

// Components returns the components as a fresh (x, y, z, w) slice.
// Complexity: O(1).
func (q Quaternion) Components() []float64 {
	return []float64{q.X, q.Y, q.Z, q.W}
}

// String implements fmt.Stringer for easy debugging.
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// ---------- Hamilton algebra ----------

// Add returns the component-wise sum q + p. Complexity: O(1).
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{X: q.X + p.X, Y: q.Y + p.Y, Z: q.Z + p.Z, W: q.W + p.W}
}

// Sub returns the component-wise difference q - p. Complexity: O(1).
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z, W: q.W - p.W}
}

// Scale returns q with every component multiplied by s. Complexity: O(1).
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Negate returns -q. As a rotation, -q is the SAME orientation (the unit
// quaternion double cover); as a value it is distinct. Complexity: O(1).
func (q Quaternion) Negate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Mul returns the Hamilton product q·p. The product is NOT commutative;
// as rotations, q.Mul(p) applies p first and q second. Complexity: O(1).
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// Dot returns the 4-component dot product. For unit quaternions this is the
// cosine of half the angle between the orientations. Complexity: O(1).
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W
}

// LengthSquared returns |q|² without the square root. Complexity: O(1).
func (q Quaternion) LengthSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the Euclidean norm |q|. Complexity: O(1).
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSquared())
}

// Normalize returns q scaled to unit length. The zero quaternion is returned
// unchanged (no rotation to recover, and a divide-by-zero would poison every
// component with NaN). Complexity: O(1).
func (q Quaternion) Normalize() Quaternion {
	lenSq := q.LengthSquared()
	if lenSq == 0 {
		return q
	}

	return q.Scale(1 / math.Sqrt(lenSq))
}

// Conjugate returns (-x, -y, -z, w). For a unit quaternion the conjugate IS
// the inverse rotation. Complexity: O(1).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse conj(q)/|q|², defined for every
// quaternion except zero.
// Errors: ErrCannotInvertZero when |q| == 0 exactly.
// Complexity: O(1).
func (q Quaternion) Inverse() (Quaternion, error) {
	lenSq := q.LengthSquared()
	if lenSq == 0 {
		return Quaternion{}, quatErrorf("Inverse", ErrCannotInvertZero)
	}

	return q.Conjugate().Scale(1 / lenSq), nil
}

// Equals reports exact component equality. NaN components never compare
// equal, matching float64 semantics. Complexity: O(1).
func (q Quaternion) Equals(p Quaternion) bool {
	return q.X == p.X && q.Y == p.Y && q.Z == p.Z && q.W == p.W
}

// EqualsEpsilon reports component-wise equality within eps.
// The comparison is written so a NaN component always fails.
// Errors: ErrInvalidEpsilon when eps is negative or non-finite.
// Complexity: O(1).
func (q Quaternion) EqualsEpsilon(p Quaternion, eps float64) (bool, error) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, quatErrorf("EqualsEpsilon", ErrInvalidEpsilon)
	}
	near := func(a, b float64) bool {
		d := math.Abs(a - b)

		return d <= eps
	}

	return near(q.X, p.X) && near(q.Y, p.Y) && near(q.Z, p.Z) && near(q.W, p.W), nil
}
