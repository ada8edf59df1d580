// SPDX-License-Identifier: MIT
// Package quat_test contains unit tests for vector rotation and the
// directional constructors (between-vectors, look-at).
package quat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/quat"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

// mustRotate applies q to v or fails the test.
func mustRotate(t *testing.T, q quat.Quaternion, v *vector.Vector) *vector.Vector {
	t.Helper()
	out, err := q.RotateVector(v)
	if err != nil {
		t.Fatalf("RotateVector(%v): %v", v, err)
	}

	return out
}

// requireVecClose asserts a 3-component vector within eps.
func requireVecClose(t *testing.T, got *vector.Vector, x, y, z, eps float64) {
	t.Helper()
	require.Equal(t, 3, got.Size())
	c := got.Components()
	require.InDelta(t, x, c[0], eps)
	require.InDelta(t, y, c[1], eps)
	require.InDelta(t, z, c[2], eps)
}

func TestRotateVector_QuarterTurnZ(t *testing.T) {
	q := mustFromAxisAngle(t, vector.Vec3(0, 0, 1), math.Pi/2)
	out := mustRotate(t, q, vector.Vec3(1, 0, 0))
	requireVecClose(t, out, 0, 1, 0, 1e-12)
}

func TestRotateVector_InputUntouched(t *testing.T) {
	q := mustFromAxisAngle(t, vector.Vec3(0, 1, 0), 1.0)
	in := vector.Vec3(1, 2, 3)
	_ = mustRotate(t, q, in)
	require.Equal(t, []float64{1, 2, 3}, in.Components())
}

func TestRotateVector_MatchesMatrix(t *testing.T) {
	q := mustFromAxisAngle(t, vector.Vec3(1, -2, 0.5), 1.7)
	in := vector.Vec3(0.3, -1.1, 2.2)

	direct := mustRotate(t, q, in)
	viaMatrix, err := q.ToMat4().TransformPoint(in)
	require.NoError(t, err)

	ok, err := direct.EqualsEpsilon(viaMatrix, 1e-9)
	require.NoError(t, err)
	require.True(t, ok, "direct %v vs matrix %v", direct, viaMatrix)
}

func TestRotateVector_PreservesLengthAndAxis(t *testing.T) {
	q := mustFromAxisAngle(t, vector.Vec3(1, 1, 1), 2.1)

	in := vector.Vec3(3, -4, 12)
	out := mustRotate(t, q, in)
	require.InDelta(t, in.Length(), out.Length(), 1e-9)

	// The rotation axis is a fixpoint.
	axis := vector.Vec3(1, 1, 1)
	fixed := mustRotate(t, q, axis)
	ok, err := fixed.EqualsEpsilon(axis, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRotateVector_IdentityAndZero(t *testing.T) {
	in := vector.Vec3(1, 2, 3)
	out := mustRotate(t, quat.Identity(), in)
	require.Equal(t, []float64{1, 2, 3}, out.Components())

	// The zero quaternion rotates nothing.
	out = mustRotate(t, quat.Quaternion{}, in)
	require.Equal(t, []float64{1, 2, 3}, out.Components())
}

func TestRotateVector_BadInput(t *testing.T) {
	_, err := quat.Identity().RotateVector(nil)
	require.ErrorIs(t, err, quat.ErrBadVector)
	_, err = quat.Identity().RotateVector(vector.Vec2(1, 2))
	require.ErrorIs(t, err, quat.ErrBadVector)
}

func TestFromBetweenVectors_CarriesFromOntoTo(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to *vector.Vector
	}{
		{"X to Y", vector.Vec3(1, 0, 0), vector.Vec3(0, 1, 0)},
		{"skew", vector.Vec3(1, 2, 3), vector.Vec3(-2, 0.5, 1)},
		{"unnormalized", vector.Vec3(0, 0, 9), vector.Vec3(4, 0, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q, err := quat.FromBetweenVectors(tc.from, tc.to)
			require.NoError(t, err)
			require.InDelta(t, 1.0, q.Length(), 1e-12)

			got := mustRotate(t, q, vector.Normalized(tc.from))
			want := vector.Normalized(tc.to)
			ok, err := got.EqualsEpsilon(want, 1e-9)
			require.NoError(t, err)
			require.True(t, ok, "rotated %v, want %v", got, want)
		})
	}
}

func TestFromBetweenVectors_Parallel(t *testing.T) {
	q, err := quat.FromBetweenVectors(vector.Vec3(1, 2, 3), vector.Vec3(2, 4, 6))
	require.NoError(t, err)
	require.Equal(t, quat.Identity(), q)
}

func TestFromBetweenVectors_Antiparallel(t *testing.T) {
	for _, tc := range []struct {
		name string
		dir  *vector.Vector
	}{
		{"Y axis", vector.Vec3(0, 1, 0)},
		{"X axis needs fallback", vector.Vec3(1, 0, 0)},
		{"skew", vector.Vec3(1, -2, 0.5)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			to := vector.Scaled(tc.dir, -1)
			q, err := quat.FromBetweenVectors(tc.dir, to)
			require.NoError(t, err)
			require.InDelta(t, 1.0, q.Length(), 1e-9)
			// A half turn: the scalar part vanishes.
			require.Zero(t, q.W)

			got := mustRotate(t, q, vector.Normalized(tc.dir))
			ok, err := got.EqualsEpsilon(vector.Normalized(to), 1e-9)
			require.NoError(t, err)
			require.True(t, ok, "rotated %v, want %v", got, vector.Normalized(to))
		})
	}
}

func TestFromBetweenVectors_Degenerate(t *testing.T) {
	_, err := quat.FromBetweenVectors(vector.Vec3(0, 0, 0), vector.Vec3(1, 0, 0))
	require.ErrorIs(t, err, quat.ErrBadVector)
	_, err = quat.FromBetweenVectors(vector.Vec3(1, 0, 0), nil)
	require.ErrorIs(t, err, quat.ErrBadVector)
}

func TestLookAt_AimsLocalZ(t *testing.T) {
	eye := vector.Vec3(1, 2, 3)
	target := vector.Vec3(1, 2, 13) // straight along +Z

	q, err := quat.LookAt(eye, target, vector.Vec3(0, 1, 0))
	require.NoError(t, err)
	requireSameRotation(t, quat.Identity(), q, 1e-9)
}

func TestLookAt_RotatesForwardOntoAim(t *testing.T) {
	for _, tc := range []struct {
		name        string
		eye, target *vector.Vector
	}{
		{"along +X", vector.Vec3(0, 0, 0), vector.Vec3(5, 0, 0)},
		{"diagonal", vector.Vec3(1, 1, 1), vector.Vec3(4, -1, 7)},
		{"behind", vector.Vec3(0, 0, 0), vector.Vec3(0, 0, -3)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q, err := quat.LookAt(tc.eye, tc.target, vector.Vec3(0, 1, 0))
			require.NoError(t, err)

			aim, err := vector.Sub(tc.target, tc.eye)
			require.NoError(t, err)
			aim.Normalize()

			got := mustRotate(t, q, vector.Vec3(0, 0, 1))
			ok, err := got.EqualsEpsilon(aim, 1e-9)
			require.NoError(t, err)
			require.True(t, ok, "forward %v, want %v", got, aim)
		})
	}
}

func TestLookAt_RespectsUpHint(t *testing.T) {
	// Looking along +X with world up +Y: local +Y must stay +Y.
	q, err := quat.LookAt(vector.Vec3(0, 0, 0), vector.Vec3(1, 0, 0), vector.Vec3(0, 1, 0))
	require.NoError(t, err)

	up := mustRotate(t, q, vector.Vec3(0, 1, 0))
	requireVecClose(t, up, 0, 1, 0, 1e-9)
}

func TestLookAt_UpFallback(t *testing.T) {
	eye := vector.Vec3(0, 0, 0)
	target := vector.Vec3(3, 0, 0)

	// Zero-length and aim-parallel up hints both fall back to world up.
	for _, up := range []*vector.Vector{
		vector.Vec3(0, 0, 0),
		vector.Vec3(1, 0, 0),
		vector.Vec3(-2, 0, 0),
	} {
		q, err := quat.LookAt(eye, target, up)
		require.NoError(t, err)

		forward := mustRotate(t, q, vector.Vec3(0, 0, 1))
		requireVecClose(t, forward, 1, 0, 0, 1e-9)
	}

	// Vertical aim: even world up is parallel, falling back to +X.
	q, err := quat.LookAt(eye, vector.Vec3(0, 5, 0), vector.Vec3(0, 1, 0))
	require.NoError(t, err)
	forward := mustRotate(t, q, vector.Vec3(0, 0, 1))
	requireVecClose(t, forward, 0, 1, 0, 1e-9)
}

func TestLookAt_Degenerate(t *testing.T) {
	p := vector.Vec3(1, 2, 3)
	_, err := quat.LookAt(p, p, vector.Vec3(0, 1, 0))
	require.ErrorIs(t, err, quat.ErrBadVector)
	_, err = quat.LookAt(nil, p, p)
	require.ErrorIs(t, err, quat.ErrBadVector)
}
