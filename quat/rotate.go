// SPDX-License-Identifier: MIT

// Package quat: applying rotations to vectors and building rotations from
// directional constraints (between-vectors, look-at).
package quat

import (
	"math"

	"github.com/katalvlaran/lvlmath/vector"
)

// vec3 is the package-local 3-component workhorse for the direction math
// below. Keeping it as a plain array avoids allocating vector.Vector values
// for every intermediate cross product.
type vec3 [axis3Size]float64

func (a vec3) add(b vec3) vec3    { return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec3) sub(b vec3) vec3    { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec3) scale(s float64) vec3 { return vec3{a[0] * s, a[1] * s, a[2] * s} }
func (a vec3) dot(b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) lengthSquared() float64 { return a.dot(a) }

// normalized returns the unit direction and whether one exists (false for
// the zero vector).
func (a vec3) normalized() (vec3, bool) {
	lenSq := a.lengthSquared()
	if lenSq == 0 {
		return a, false
	}

	return a.scale(1 / math.Sqrt(lenSq)), true
}

// RotateVector applies the rotation to a 3-component vector and returns the
// rotated copy; the input is never mutated.
//
// The expansion v' = v + 2w·(q×v) + 2·q×(q×v) (q the vector part) costs two
// cross products instead of the full q·v·q⁻¹ sandwich of Hamilton products.
// The receiver is normalized internally; the zero quaternion rotates nothing.
//
// Errors: ErrBadVector when v is nil or not 3-component.
// Complexity: O(1).
func (q Quaternion) RotateVector(v *vector.Vector) (*vector.Vector, error) {
	p, err := readAxis("RotateVector", v)
	if err != nil {
		return nil, err
	}
	n := q.Normalize()
	if n.LengthSquared() == 0 {
		return vector.Vec3(p[0], p[1], p[2]), nil
	}
	u := vec3{n.X, n.Y, n.Z}
	in := vec3(p)

	t := u.cross(in).scale(2)
	out := in.add(t.scale(n.W)).add(u.cross(t))

	return vector.Vec3(out[0], out[1], out[2]), nil
}

// FromBetweenVectors builds the shortest-arc rotation carrying direction
// from onto direction to (both normalized internally).
//
// Degenerate cases:
//   - Either input zero-length: ErrBadVector (no direction to align).
//   - Already parallel (dot > parallelDot): identity.
//   - Antiparallel (dot < -parallelDot): the arc is ambiguous, so a 180°
//     rotation is built about an axis orthogonal to from, preferring the
//     cross with +X and falling back to +Y when from is itself along X.
//
// Errors: ErrBadVector on nil, non-3-component or zero-length inputs.
// Complexity: O(1).
func FromBetweenVectors(from, to *vector.Vector) (Quaternion, error) {
	fa, err := readAxis("FromBetweenVectors", from)
	if err != nil {
		return Quaternion{}, err
	}
	ta, err := readAxis("FromBetweenVectors", to)
	if err != nil {
		return Quaternion{}, err
	}
	f, ok := vec3(fa).normalized()
	if !ok {
		return Quaternion{}, quatErrorf("FromBetweenVectors", ErrBadVector)
	}
	t, ok := vec3(ta).normalized()
	if !ok {
		return Quaternion{}, quatErrorf("FromBetweenVectors", ErrBadVector)
	}

	dot := f.dot(t)
	switch {
	case dot > parallelDot:
		return Identity(), nil
	case dot < -parallelDot:
		axis := vec3{1, 0, 0}.cross(f)
		if axis.lengthSquared() < axisSineEps*axisSineEps {
			axis = vec3{0, 1, 0}.cross(f)
		}
		axis, _ = axis.normalized()

		return Quaternion{X: axis[0], Y: axis[1], Z: axis[2], W: 0}, nil
	}

	// Half-way construction: (f×t, 1+f·t) normalized is the half-angle form.
	c := f.cross(t)

	return Quaternion{X: c[0], Y: c[1], Z: c[2], W: 1 + dot}.Normalize(), nil
}

// LookAt builds the orientation that aims the local +Z axis from the eye
// position toward the target, with the local +Y axis matched to up as
// closely as the aim constraint allows (Gram-Schmidt re-orthogonalization).
//
// Degenerate cases:
//   - eye == target: ErrBadVector (no aim direction).
//   - up zero-length or parallel to the aim direction: the conventional
//     world up +Y is substituted, and +X when the aim IS vertical.
//
// Errors: ErrBadVector on nil, non-3-component inputs or eye == target.
// Complexity: O(1).
func LookAt(eye, target, up *vector.Vector) (Quaternion, error) {
	ea, err := readAxis("LookAt", eye)
	if err != nil {
		return Quaternion{}, err
	}
	ta, err := readAxis("LookAt", target)
	if err != nil {
		return Quaternion{}, err
	}
	ua, err := readAxis("LookAt", up)
	if err != nil {
		return Quaternion{}, err
	}

	forward, ok := vec3(ta).sub(vec3(ea)).normalized()
	if !ok {
		return Quaternion{}, quatErrorf("LookAt", ErrBadVector)
	}

	u := vec3(ua)
	// Reject the up hint when it cannot constrain the roll: zero-length or
	// (anti)parallel to the aim direction.
	if un, uok := u.normalized(); !uok || math.Abs(un.dot(forward)) > parallelDot {
		u = vec3{0, 1, 0}
		if math.Abs(u.dot(forward)) > parallelDot {
			u = vec3{1, 0, 0}
		}
	}

	right, _ := u.cross(forward).normalized()
	newUp := forward.cross(right)

	// Basis columns (right, newUp, forward) form the rotation matrix mapping
	// local +X/+Y/+Z onto them; extract via the trace method.
	return fromRotationBlock([9]float64{
		right[0], right[1], right[2],
		newUp[0], newUp[1], newUp[2],
		forward[0], forward[1], forward[2],
	}), nil
}
