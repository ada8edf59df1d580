// SPDX-License-Identifier: MIT
// Package quat_test contains unit tests for the interpolation family:
// lerp/nlerp/slerp, squad, angular distance and rate-limited rotation.
package quat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/quat"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

func TestLerp_ComponentWise(t *testing.T) {
	a := quat.New(0, 0, 0, 0)
	b := quat.New(2, 4, 6, 8)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, quat.New(1, 2, 3, 4), a.Lerp(b, 0.5))
	// Not clamped: extrapolation is allowed.
	require.Equal(t, quat.New(4, 8, 12, 16), a.Lerp(b, 2))
}

func TestNlerp_UnitResult(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/2)

	mid := a.Nlerp(b, 0.5)
	require.InDelta(t, 1.0, mid.Length(), 1e-12)
}

func TestSlerp_Endpoints(t *testing.T) {
	a := mustFromAxisAngle(t, vector.Vec3(1, 0, 0), 0.4)
	b := mustFromAxisAngle(t, vector.Vec3(0, 1, 0), 1.9)

	requireSameRotation(t, a, a.Slerp(b, 0), 1e-12)
	requireSameRotation(t, b, a.Slerp(b, 1), 1e-12)
}

func TestSlerp_MidpointHalvesTheAngle(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/2)

	mid := a.Slerp(b, 0.5)
	want := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/4)
	requireSameRotation(t, want, mid, 1e-12)
}

func TestSlerp_ConstantAngularVelocity(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(1, 1, 0), 2.0)

	q1 := a.Slerp(b, 0.25)
	q2 := a.Slerp(b, 0.5)
	q3 := a.Slerp(b, 0.75)

	require.InDelta(t, q1.AngleTo(q2), q2.AngleTo(q3), 1e-9)
	require.InDelta(t, a.AngleTo(q1), q3.AngleTo(b), 1e-9)
}

func TestSlerp_TakesShorterArc(t *testing.T) {
	a := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.2)
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 1.0)

	// Negating b flips the sign but not the orientation; the path must be
	// identical up to the double cover.
	mid := a.Slerp(b, 0.5)
	midNeg := a.Slerp(b.Negate(), 0.5)
	requireSameRotation(t, mid, midNeg, 1e-12)
	requireSameRotation(t, mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.6), mid, 1e-12)
}

func TestSlerp_NearIdenticalFallsBackToNlerp(t *testing.T) {
	a := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.3)
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.3+1e-8)

	mid := a.Slerp(b, 0.5)
	require.InDelta(t, 1.0, mid.Length(), 1e-12)
	requireSameRotation(t, a, mid, 1e-6)
}

func TestSlerp_NormalizesInputs(t *testing.T) {
	a := quat.Identity().Scale(3)
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/2).Scale(0.5)

	mid := a.Slerp(b, 0.5)
	requireSameRotation(t, mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/4), mid, 1e-12)
}

func TestSquad_Endpoints(t *testing.T) {
	q0 := quat.Identity()
	q1 := mustFromAxisAngle(t, vector.Vec3(1, 0, 0), 0.3)
	q2 := mustFromAxisAngle(t, vector.Vec3(0, 1, 0), 0.6)
	q3 := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.9)

	requireSameRotation(t, q0, quat.Squad(q0, q1, q2, q3, 0), 1e-12)
	requireSameRotation(t, q3, quat.Squad(q0, q1, q2, q3, 1), 1e-12)
}

func TestSquad_MidpointPullsTowardControls(t *testing.T) {
	// With both controls equal to the outer midpoint the blend is a no-op.
	q0 := quat.Identity()
	q3 := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 1.0)
	mid := q0.Slerp(q3, 0.5)

	got := quat.Squad(q0, mid, mid, q3, 0.5)
	requireSameRotation(t, mid, got, 1e-12)
}

func TestAngleTo(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/2)
	require.InDelta(t, math.Pi/2, a.AngleTo(b), 1e-9)

	// Symmetric.
	require.InDelta(t, a.AngleTo(b), b.AngleTo(a), 1e-12)

	// Same orientation on either cover snaps to exactly zero.
	require.Zero(t, b.AngleTo(b))
	require.Zero(t, b.AngleTo(b.Negate()))

	// A scaled copy renormalizes to the same orientation; the dot may round
	// past 1 and must still yield zero, never NaN.
	require.Zero(t, b.AngleTo(b.Scale(3)))
	require.False(t, math.IsNaN(quat.New(0.3, -0.4, 0.5, 0.7).AngleTo(quat.New(0.6, -0.8, 1.0, 1.4))))
}

func TestAngleTo_HalfTurnIsPi(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 1, 0), math.Pi)
	require.InDelta(t, math.Pi, a.AngleTo(b), 1e-9)
}

func TestRotateTowards_StepLimited(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 1.0)

	step := a.RotateTowards(b, 0.25)
	requireSameRotation(t, mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.25), step, 1e-9)
	require.InDelta(t, 0.75, step.AngleTo(b), 1e-9)
}

func TestRotateTowards_ReachesTargetExactly(t *testing.T) {
	a := quat.Identity()
	b := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), 0.2)

	// Budget beyond the remaining angle lands exactly on the target.
	require.Equal(t, b.Normalize(), a.RotateTowards(b, 1.0))
	// Zero budget at zero distance is a no-op fixpoint.
	require.Equal(t, b.Normalize(), b.RotateTowards(b, 0))
}

func TestRotateTowards_Converges(t *testing.T) {
	cur := quat.Identity()
	target := mustFromAxisAngle(t, vector.Vec3(1, 2, 3), 2.5)

	for i := 0; i < 30; i++ {
		cur = cur.RotateTowards(target, 0.1)
	}
	require.Zero(t, cur.AngleTo(target))
}
