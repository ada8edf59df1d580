// SPDX-License-Identifier: MIT

// Package quat: orientation interpolation.
//
// Slerp is the workhorse: constant angular velocity along the great arc,
// shorter-arc selection via the double cover, and a normalized-lerp fallback
// when the arc is too short for the sin-ratio weights. Squad builds on it
// for C¹-continuous spline segments; RotateTowards is the rate-limited
// variant games use for steering.
package quat

import "math"

// Lerp returns the component-wise linear blend (1-t)·q + t·p.
// t is NOT clamped; values outside [0, 1] extrapolate. The result is
// generally not unit length (see Nlerp). Complexity: O(1).
func (q Quaternion) Lerp(p Quaternion, t float64) Quaternion {
	return Quaternion{
		X: q.X + (p.X-q.X)*t,
		Y: q.Y + (p.Y-q.Y)*t,
		Z: q.Z + (p.Z-q.Z)*t,
		W: q.W + (p.W-q.W)*t,
	}
}

// Nlerp returns the normalized linear blend: cheaper than Slerp, same
// endpoints and same path, but with non-constant angular velocity.
// Complexity: O(1).
func (q Quaternion) Nlerp(p Quaternion, t float64) Quaternion {
	return q.Lerp(p, t).Normalize()
}

// Slerp returns the spherical linear interpolation from q (t=0) to p (t=1)
// with constant angular velocity.
//
// Implementation:
//   - Stage 1: normalize both endpoints (unit-sphere geometry).
//   - Stage 2: shorter arc — when the endpoints' dot product is negative,
//     negate the target; -p is the same orientation on the opposite cover.
//   - Stage 3: when the dot exceeds slerpLinearDot the arc is nearly
//     degenerate and sin(θ) cancellation dominates, so fall back to Nlerp.
//   - Stage 4: otherwise blend with the sin-ratio weights
//     sin((1-t)θ)/sin(θ) and sin(tθ)/sin(θ).
//
// Complexity: O(1).
func (q Quaternion) Slerp(p Quaternion, t float64) Quaternion {
	a := q.Normalize()
	b := p.Normalize()

	dot := a.Dot(b)
	if dot < 0 {
		b = b.Negate()
		dot = -dot
	}
	if dot > slerpLinearDot {
		return a.Lerp(b, t).Normalize()
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	return a.Scale(wa).Add(b.Scale(wb))
}

// Squad returns spherical quadrangle interpolation across the segment from
// q0 (t=0) to q3 (t=1), with q1 and q2 as the inner control orientations:
//
//	slerp(slerp(q0, q3, t), slerp(q1, q2, t), 2t(1-t))
//
// The parabolic blend weight vanishes at both endpoints, so chained segments
// sharing control points join with continuous angular velocity.
// Complexity: O(1).
func Squad(q0, q1, q2, q3 Quaternion, t float64) Quaternion {
	outer := q0.Slerp(q3, t)
	inner := q1.Slerp(q2, t)

	return outer.Slerp(inner, 2*t*(1-t))
}

// AngleTo returns the rotation angle in radians, in [0, π], needed to turn
// the orientation q into p. The dot product's absolute value folds the
// double cover (q and -q are the same orientation); dots within parallelDot
// of 1 snap the angle to exactly zero so callers can compare against it.
// Complexity: O(1).
func (q Quaternion) AngleTo(p Quaternion) float64 {
	dot := math.Abs(q.Normalize().Dot(p.Normalize()))
	if dot > parallelDot {
		// Covers the rounding overshoot past 1, which would NaN in Acos.
		return 0
	}

	return 2 * math.Acos(dot)
}

// RotateTowards advances from q toward target by at most maxRadians,
// following the shorter arc. When the remaining angle is within maxRadians
// the target itself is returned, so iterating converges exactly.
// A negative maxRadians is treated as zero (no backward rotation).
// Complexity: O(1).
func (q Quaternion) RotateTowards(target Quaternion, maxRadians float64) Quaternion {
	angle := q.AngleTo(target)
	if angle == 0 {
		return target.Normalize()
	}
	if maxRadians < 0 {
		maxRadians = 0
	}
	t := maxRadians / angle
	if t >= 1 {
		return target.Normalize()
	}

	return q.Slerp(target, t)
}
