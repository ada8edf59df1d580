// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Mat4 transform builders and
// the point/direction/vector application operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/vector"
	"github.com/stretchr/testify/require"
)

// requireVec3 asserts a 3-component vector within eps.
func requireVec3(t *testing.T, v *vector.Vector, x, y, z, eps float64) {
	t.Helper()
	require.Equal(t, 3, v.Size())
	got := v.Components()
	require.InDelta(t, x, got[0], eps)
	require.InDelta(t, y, got[1], eps)
	require.InDelta(t, z, got[2], eps)
}

func TestMakeTranslation(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeTranslation(1, 2, 3)

	p, err := m.TransformPoint(vector.Vec3(10, 20, 30))
	require.NoError(t, err)
	requireVec3(t, p, 11, 22, 33, 0)

	// Directions ignore translation entirely.
	d, err := m.TransformDirection(vector.Vec3(10, 20, 30))
	require.NoError(t, err)
	requireVec3(t, d, 10, 20, 30, 0)
}

func TestBuilders_ResetFirst(t *testing.T) {
	// A builder called on a dirty matrix must fully overwrite it.
	m := matrix.NewMat4()
	m.MakeTranslation(5, 5, 5)
	m.MakeScale(2, 2, 2)

	p, err := m.TransformPoint(vector.Vec3(1, 1, 1))
	require.NoError(t, err)
	requireVec3(t, p, 2, 2, 2, 0) // no residual translation
}

func TestMakeRotationX(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeRotationX(math.Pi / 2)

	p, err := m.TransformPoint(vector.Vec3(0, 1, 0))
	require.NoError(t, err)
	requireVec3(t, p, 0, 0, 1, 1e-12) // +Y → +Z
}

func TestMakeRotationY(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeRotationY(math.Pi / 2)

	p, err := m.TransformPoint(vector.Vec3(0, 0, 1))
	require.NoError(t, err)
	requireVec3(t, p, 1, 0, 0, 1e-12) // +Z → +X
}

func TestMakeRotationZ(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeRotationZ(math.Pi / 2)

	p, err := m.TransformPoint(vector.Vec3(1, 0, 0))
	require.NoError(t, err)
	requireVec3(t, p, 0, 1, 0, 1e-12) // +X → +Y
}

func TestMakeScale(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeScale(2, 3, 4)

	p, err := m.TransformPoint(vector.Vec3(1, 1, 1))
	require.NoError(t, err)
	requireVec3(t, p, 2, 3, 4, 0)
}

func TestCompositionOrder(t *testing.T) {
	// Mul(T, S) applies the scale first, then the translation.
	tr := matrix.NewMat4()
	tr.MakeTranslation(10, 0, 0)
	sc := matrix.NewMat4()
	sc.MakeScale(2, 2, 2)

	ts, err := matrix.Mul(tr, sc)
	require.NoError(t, err)
	p, err := ts.(*matrix.Mat4).TransformPoint(vector.Vec3(1, 0, 0))
	require.NoError(t, err)
	requireVec3(t, p, 12, 0, 0, 1e-12)

	// The opposite order scales the translation too.
	st, err := matrix.Mul(sc, tr)
	require.NoError(t, err)
	p, err = st.(*matrix.Mat4).TransformPoint(vector.Vec3(1, 0, 0))
	require.NoError(t, err)
	requireVec3(t, p, 22, 0, 0, 1e-12)
}

func TestTransformPoint_PerspectiveDivide(t *testing.T) {
	// A w-row of (0,0,0,2) doubles w, so the point halves.
	m := MustMat4Of(t,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 2)
	p, err := m.TransformPoint(vector.Vec3(4, 6, 8))
	require.NoError(t, err)
	requireVec3(t, p, 2, 3, 4, 1e-12)
}

func TestTransformPoint_ZeroWGuard(t *testing.T) {
	// Zeroing the w row would divide by zero; the guard keeps output finite.
	m := MustMat4Of(t,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 0)
	p, err := m.TransformPoint(vector.Vec3(1, 2, 3))
	require.NoError(t, err)
	requireVec3(t, p, 1, 2, 3, 0)
}

func TestTransformVector_NoDivide(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeTranslation(5, 0, 0)

	// w=1 picks up the translation, w=0 does not; nothing is divided.
	v, err := m.TransformVector(vector.Vec4(1, 2, 3, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 2, 3, 1}, v.Components())

	v, err = m.TransformVector(vector.Vec4(1, 2, 3, 0))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 0}, v.Components())
}

func TestTransform_SizeRejections(t *testing.T) {
	m := matrix.NewMat4Identity()

	_, err := m.TransformPoint(vector.Vec2(1, 2))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.TransformPoint(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.TransformDirection(vector.Vec4(1, 2, 3, 4))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.TransformVector(vector.Vec3(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestRotationRoundTrip_InverseUndoes(t *testing.T) {
	m := matrix.NewMat4()
	m.MakeRotationY(0.7)
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	p0 := vector.Vec3(1, 2, 3)
	p1, err := m.TransformPoint(p0)
	require.NoError(t, err)
	p2, err := inv.(*matrix.Mat4).TransformPoint(p1)
	require.NoError(t, err)
	requireVec3(t, p2, 1, 2, 3, 1e-12)
}
