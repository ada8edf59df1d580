// SPDX-License-Identifier: MIT

// Package matrix: Mat3 is the fixed 3×3 square specialization.
// Mat3 declares itself as its own transpose type and dispatches to O(1)
// closed-form determinant/inverse in the kernels.
package matrix

import "fmt"

// mat3Dim is the fixed dimension of Mat3; mat3Len its buffer length.
const (
	mat3Dim = 3
	mat3Len = mat3Dim * mat3Dim
)

// Mat3 is a column-major 3×3 matrix of float64 values.
type Mat3 struct {
	core
}

// NewMat3 creates a 3×3 zero matrix. Complexity: O(1) (9 elements).
func NewMat3() *Mat3 {
	return &Mat3{core{rows: mat3Dim, cols: mat3Dim, data: make([]float64, mat3Len)}}
}

// NewMat3Identity creates a 3×3 identity matrix. Complexity: O(1).
func NewMat3Identity() *Mat3 {
	m := NewMat3()
	m.MakeIdentity()

	return m
}

// Mat3Of builds a Mat3 from exactly 9 values in column-major order.
// Errors: ErrBadShape when len(values) != 9.
func Mat3Of(values ...float64) (*Mat3, error) {
	if len(values) != mat3Len {
		return nil, fmt.Errorf("Mat3.Of: %w", ErrBadShape)
	}
	m := NewMat3()
	copy(m.data, values)

	return m, nil
}

// Mat3FromSlice imports 9 column-major values from src starting at offset.
// Under WithValidateNaNInf the window is rejected on NaN/±Inf (ErrNonFinite).
// Errors: ErrBadShape on window violations.
// Complexity: O(1) (9 elements).
func Mat3FromSlice(src []float64, offset int, opts ...Option) (*Mat3, error) {
	if offset < 0 || offset+mat3Len > len(src) {
		return nil, fmt.Errorf("Mat3.FromSlice: %w", ErrBadShape)
	}
	window := src[offset : offset+mat3Len]
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err := validateSlice("Mat3.FromSlice", window); err != nil {
			return nil, err
		}
	}
	m := NewMat3()
	copy(m.data, window)

	return m, nil
}

// Clone returns a deep copy of the matrix. Complexity: O(1).
func (m *Mat3) Clone() Matrix {
	return &Mat3{core{rows: mat3Dim, cols: mat3Dim, data: m.cloneData()}}
}

// TransposeShape declares Mat3 as its own transpose type (square) and
// returns a fresh zero instance. Complexity: O(1).
func (m *Mat3) TransposeShape() (Matrix, error) {
	return NewMat3(), nil
}

// Dim returns 3. Complexity: O(1).
func (m *Mat3) Dim() int { return mat3Dim }
