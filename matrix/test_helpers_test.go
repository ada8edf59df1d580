// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures: Must* constructors that
// abort the test on error, and the hide wrapper that masks concrete types to
// force kernels onto their interface fallback path.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so
// kernels cannot take the *Dense/*Mat3/*Mat4 raw-buffer fast path. Wrap only
// the operand under test to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates a rows×cols zero Dense or fails the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustIdentity allocates an n×n identity Dense or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustMat3Of builds a Mat3 from 9 column-major values or fails the test.
func MustMat3Of(t *testing.T, values ...float64) *matrix.Mat3 {
	t.Helper()
	m, err := matrix.Mat3Of(values...)
	if err != nil {
		t.Fatalf("Mat3Of: %v", err)
	}

	return m
}

// MustMat4Of builds a Mat4 from 16 column-major values or fails the test.
func MustMat4Of(t *testing.T, values ...float64) *matrix.Mat4 {
	t.Helper()
	m, err := matrix.Mat4Of(values...)
	if err != nil {
		t.Fatalf("Mat4Of: %v", err)
	}

	return m
}

// NewFilledDense builds a rows×cols Dense from column-major data or fails.
func NewFilledDense(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.DenseFromSlice(data, 0, rows, cols)
	if err != nil {
		t.Fatalf("DenseFromSlice(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustAt reads element (col, row) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, col, row int) float64 {
	t.Helper()
	v, err := m.At(col, row)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", col, row, err)
	}

	return v
}

// MustSet assigns element (col, row) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, col, row int, v float64) {
	t.Helper()
	if err := m.Set(col, row, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", col, row, v, err)
	}
}

// Flat exports the column-major buffer of m or fails the test.
func Flat(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, m.Rows()*m.Cols())
	if err := m.CopyTo(out, 0); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}

	return out
}

// RequireAllClose asserts element-wise closeness within eps.
func RequireAllClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.EqualsEpsilon(want, got, eps)
	if err != nil {
		t.Fatalf("EqualsEpsilon: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond eps=%g:\nwant:\n%vgot:\n%v", eps, want, got)
	}
}
