// SPDX-License-Identifier: MIT

// Package matrix: Mat4 is the fixed 4×4 square specialization.
// Mat4 declares itself as its own transpose type; the kernels bypass generic
// index math for it with fully unrolled closed forms (multiply, determinant,
// inverse). This file adds the transform builders and the point/direction/
// vector application operations.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmath/vector"
)

// mat4Dim is the fixed dimension of Mat4; mat4Len its buffer length.
const (
	mat4Dim = 4
	mat4Len = mat4Dim * mat4Dim
)

// point/direction component counts accepted by the Transform* operations.
const (
	point3Size = 3
	homo4Size  = 4
)

// Mat4 is a column-major 4×4 matrix of float64 values.
// Flat layout: element (col c, row r) at c*4 + r; indices 12..14 hold the
// translation column.
type Mat4 struct {
	core
}

// NewMat4 creates a 4×4 zero matrix. Complexity: O(1) (16 elements).
func NewMat4() *Mat4 {
	return &Mat4{core{rows: mat4Dim, cols: mat4Dim, data: make([]float64, mat4Len)}}
}

// NewMat4Identity creates a 4×4 identity matrix. Complexity: O(1).
func NewMat4Identity() *Mat4 {
	m := NewMat4()
	m.MakeIdentity()

	return m
}

// Mat4Of builds a Mat4 from exactly 16 values in column-major order.
// Errors: ErrBadShape when len(values) != 16.
func Mat4Of(values ...float64) (*Mat4, error) {
	if len(values) != mat4Len {
		return nil, fmt.Errorf("Mat4.Of: %w", ErrBadShape)
	}
	m := NewMat4()
	copy(m.data, values)

	return m, nil
}

// Mat4FromSlice imports 16 column-major values from src starting at offset.
// Under WithValidateNaNInf the window is rejected on NaN/±Inf (ErrNonFinite).
// Errors: ErrBadShape on window violations.
// Complexity: O(1) (16 elements).
func Mat4FromSlice(src []float64, offset int, opts ...Option) (*Mat4, error) {
	if offset < 0 || offset+mat4Len > len(src) {
		return nil, fmt.Errorf("Mat4.FromSlice: %w", ErrBadShape)
	}
	window := src[offset : offset+mat4Len]
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err := validateSlice("Mat4.FromSlice", window); err != nil {
			return nil, err
		}
	}
	m := NewMat4()
	copy(m.data, window)

	return m, nil
}

// Clone returns a deep copy of the matrix. Complexity: O(1).
func (m *Mat4) Clone() Matrix {
	return &Mat4{core{rows: mat4Dim, cols: mat4Dim, data: m.cloneData()}}
}

// TransposeShape declares Mat4 as its own transpose type (square) and
// returns a fresh zero instance. Complexity: O(1).
func (m *Mat4) TransposeShape() (Matrix, error) {
	return NewMat4(), nil
}

// Dim returns 4. Complexity: O(1).
func (m *Mat4) Dim() int { return mat4Dim }

// ---------- Transform builders ----------
//
// Every builder resets the receiver to identity FIRST and then writes the
// entries specific to that transform. Builders therefore fully overwrite:
// calling two builders in sequence is not composition — compose with Mul.

// MakeTranslation resets to identity and sets the translation column (x,y,z).
// Complexity: O(1).
func (m *Mat4) MakeTranslation(x, y, z float64) {
	m.MakeIdentity()
	m.data[12] = x
	m.data[13] = y
	m.data[14] = z
}

// MakeRotationX resets to identity and sets a rotation of angle radians
// about the +X axis. Complexity: O(1).
func (m *Mat4) MakeRotationX(angle float64) {
	s, c := math.Sincos(angle)
	m.MakeIdentity()
	m.data[5] = c
	m.data[6] = s
	m.data[9] = -s
	m.data[10] = c
}

// MakeRotationY resets to identity and sets a rotation of angle radians
// about the +Y axis. Complexity: O(1).
func (m *Mat4) MakeRotationY(angle float64) {
	s, c := math.Sincos(angle)
	m.MakeIdentity()
	m.data[0] = c
	m.data[2] = -s
	m.data[8] = s
	m.data[10] = c
}

// MakeRotationZ resets to identity and sets a rotation of angle radians
// about the +Z axis. Complexity: O(1).
func (m *Mat4) MakeRotationZ(angle float64) {
	s, c := math.Sincos(angle)
	m.MakeIdentity()
	m.data[0] = c
	m.data[1] = s
	m.data[4] = -s
	m.data[5] = c
}

// MakeScale resets to identity and sets the diagonal scale factors.
// Complexity: O(1).
func (m *Mat4) MakeScale(x, y, z float64) {
	m.MakeIdentity()
	m.data[0] = x
	m.data[5] = y
	m.data[10] = z
}

// ---------- Transform application ----------

// TransformPoint applies the full 4×4 transform to the homogeneous point
// (v, 1) and perspective-divides by the resulting w, so translation and
// perspective are honored. A resulting w of exactly zero is treated as 1
// (the point is at infinity; skipping the divide keeps the output finite).
//
// Errors: ErrNilMatrix-style nil guard is not needed (method receiver);
// vector size must be 3 (ErrBadShape).
// Complexity: O(1).
func (m *Mat4) TransformPoint(v *vector.Vector) (*vector.Vector, error) {
	if v == nil || v.Size() != point3Size {
		return nil, fmt.Errorf("Mat4.TransformPoint: %w", ErrBadShape)
	}
	var p [point3Size]float64
	if err := v.CopyTo(p[:], 0); err != nil {
		return nil, fmt.Errorf("Mat4.TransformPoint: %w", err)
	}
	d := m.data
	w := d[3]*p[0] + d[7]*p[1] + d[11]*p[2] + d[15]
	if w == 0 {
		w = 1
	}

	return vector.Vec3(
		(d[0]*p[0]+d[4]*p[1]+d[8]*p[2]+d[12])/w,
		(d[1]*p[0]+d[5]*p[1]+d[9]*p[2]+d[13])/w,
		(d[2]*p[0]+d[6]*p[1]+d[10]*p[2]+d[14])/w,
	), nil
}

// TransformDirection applies only the upper-left 3×3 block, ignoring the
// translation column and w row — correct for direction vectors, and for
// normals ONLY under uniform scale. Normals under non-uniform scale require
// the inverse-transpose, which is left to the caller.
//
// Errors: vector size must be 3 (ErrBadShape).
// Complexity: O(1).
func (m *Mat4) TransformDirection(v *vector.Vector) (*vector.Vector, error) {
	if v == nil || v.Size() != point3Size {
		return nil, fmt.Errorf("Mat4.TransformDirection: %w", ErrBadShape)
	}
	var p [point3Size]float64
	if err := v.CopyTo(p[:], 0); err != nil {
		return nil, fmt.Errorf("Mat4.TransformDirection: %w", err)
	}
	d := m.data

	return vector.Vec3(
		d[0]*p[0]+d[4]*p[1]+d[8]*p[2],
		d[1]*p[0]+d[5]*p[1]+d[9]*p[2],
		d[2]*p[0]+d[6]*p[1]+d[10]*p[2],
	), nil
}

// TransformVector applies the full 4×4 transform to a homogeneous 4-vector
// with no perspective divide.
//
// Errors: vector size must be 4 (ErrBadShape).
// Complexity: O(1).
func (m *Mat4) TransformVector(v *vector.Vector) (*vector.Vector, error) {
	if v == nil || v.Size() != homo4Size {
		return nil, fmt.Errorf("Mat4.TransformVector: %w", ErrBadShape)
	}
	var p [homo4Size]float64
	if err := v.CopyTo(p[:], 0); err != nil {
		return nil, fmt.Errorf("Mat4.TransformVector: %w", err)
	}
	d := m.data

	return vector.Vec4(
		d[0]*p[0]+d[4]*p[1]+d[8]*p[2]+d[12]*p[3],
		d[1]*p[0]+d[5]*p[1]+d[9]*p[2]+d[13]*p[3],
		d[2]*p[0]+d[6]*p[1]+d[10]*p[2]+d[14]*p[3],
		d[3]*p[0]+d[7]*p[1]+d[11]*p[2]+d[15]*p[3],
	), nil
}
