// SPDX-License-Identifier: MIT
// Package matrix: determinant and inverse kernels.
//
// The generic path is a first-row cofactor recursion and an
// adjugate-over-determinant inverse: dimension-agnostic reference
// implementations with FACTORIAL cost — never use them in hot loops.
// Mat3 and Mat4 dispatch to O(1) closed forms expressed directly on the
// named buffer elements.
//
// Singularity policy: only an EXACTLY-zero determinant is rejected
// (ErrNotInvertible). There is deliberately no epsilon tolerance —
// near-singular matrices are legitimate input with reduced but defined
// precision; adding a tolerance here would silently change failure
// semantics for callers.

package matrix

// Operation tags for unified error wrapping.
const (
	opDeterminant = "Determinant"
	opInvert      = "Invert"
)

// Determinant computes det(m) for any square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil (ErrNilMatrix, ErrNonSquare).
//   - Stage 2: *Mat4 and *Mat3 take the closed forms; everything else goes
//     through the cofactor recursion on a materialized buffer.
//
// Complexity: O(1) for Mat3/Mat4; O(n!·n) for the generic recursion —
// acceptable only as a dimension-agnostic fallback.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	switch t := m.(type) {
	case *Mat4:
		return det4(t.data), nil
	case *Mat3:
		return det3(t.data), nil
	}

	buf, err := readAll(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	return detRec(buf, m.Rows()), nil
}

// detRec expands det along the first row:
// Σ_j (-1)^j · a(0,j) · det(minor excluding row 0, column j).
// buf is column-major n×n; cost is O(n!·n).
func detRec(buf []float64, n int) float64 {
	if n == 1 {
		return buf[0]
	}
	if n == 2 {
		// a(0,0)·a(1,1) − a(0,1)·a(1,0) with (col c, row r) at c*2+r.
		return buf[0]*buf[3] - buf[2]*buf[1]
	}
	var det float64
	sign := 1.0
	for j := 0; j < n; j++ {
		// a(row 0, col j) sits at the top of column j.
		det += sign * buf[j*n] * detRec(minorOf(buf, n, 0, j), n-1)
		sign = -sign
	}

	return det
}

// minorOf builds the (n-1)×(n-1) column-major minor of buf excluding
// exRow and exCol. Complexity: O(n²).
func minorOf(buf []float64, n, exRow, exCol int) []float64 {
	out := make([]float64, (n-1)*(n-1))
	mc := 0
	for c := 0; c < n; c++ {
		if c == exCol {
			continue
		}
		mr := 0
		for r := 0; r < n; r++ {
			if r == exRow {
				continue
			}
			out[mc*(n-1)+mr] = buf[c*n+r]
			mr++
		}
		mc++
	}

	return out
}

// Invert replaces m with its inverse in place.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: *Mat4/*Mat3 run the closed-form adjugate; the generic path
//     computes the adjugate entry-by-entry via cofactor minors and scales
//     by 1/det. All paths build into a scratch buffer and write last, so
//     m is left untouched when the determinant is exactly zero.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotInvertible (det == 0 exactly).
// Complexity: O(1) for Mat3/Mat4; O(n!·n³)-ish for the generic adjugate —
// reference path only.
func Invert(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opInvert, err)
	}

	switch t := m.(type) {
	case *Mat4:
		return inv4(t.data)
	case *Mat3:
		return inv3(t.data)
	}

	buf, err := readAll(opInvert, m)
	if err != nil {
		return err
	}
	n := m.Rows()
	det := detRec(buf, n)
	if det == 0 {
		return matrixErrorf(opInvert, ErrNotInvertible)
	}
	inv := 1 / det
	out := make([]float64, n*n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			// inverse(r,c) = (-1)^(r+c) · det(minor excl. row c, col r) / det
			// — the adjugate is the TRANSPOSE of the cofactor matrix, hence
			// the swapped row/column in the minor.
			sign := 1.0
			if (r+c)&1 == 1 {
				sign = -1
			}
			out[c*n+r] = sign * detRec(minorOf(buf, n, c, r), n-1) * inv
		}
	}

	return writeAll(opInvert, m, out)
}

// Inverse returns a fresh inverse of m with the same concrete type.
// Errors: as Invert.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	res := m.Clone()
	if err := Invert(res); err != nil {
		return nil, err
	}

	return res, nil
}

// ---------- Closed forms ----------
//
// Local naming below is aCR = element at column C, row R of the flat
// column-major buffer (a01 == a[1] == column 0, row 1). Determinants are
// transpose-invariant, so the same expressions serve either convention.

// det3 is the closed-form 3×3 determinant. O(1).
func det3(a []float64) float64 {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	return a00*(a11*a22-a12*a21) -
		a10*(a01*a22-a02*a21) +
		a20*(a01*a12-a02*a11)
}

// inv3 replaces the 3×3 buffer with its inverse via the adjugate.
// Errors: ErrNotInvertible on an exactly-zero determinant. O(1).
func inv3(a []float64) error {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	// First column of the adjugate doubles as the determinant expansion.
	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		return matrixErrorf(opInvert, ErrNotInvertible)
	}
	inv := 1 / det

	a[0] = b01 * inv
	a[1] = (-a22*a01 + a02*a21) * inv
	a[2] = (a12*a01 - a02*a11) * inv
	a[3] = b11 * inv
	a[4] = (a22*a00 - a02*a20) * inv
	a[5] = (-a12*a00 + a02*a10) * inv
	a[6] = b21 * inv
	a[7] = (-a21*a00 + a01*a20) * inv
	a[8] = (a11*a00 - a01*a10) * inv

	return nil
}

// det4 is the closed-form 4×4 determinant built from the twelve 2×2
// sub-determinants shared with inv4. O(1).
func det4(a []float64) float64 {
	b00 := a[0]*a[5] - a[1]*a[4]
	b01 := a[0]*a[6] - a[2]*a[4]
	b02 := a[0]*a[7] - a[3]*a[4]
	b03 := a[1]*a[6] - a[2]*a[5]
	b04 := a[1]*a[7] - a[3]*a[5]
	b05 := a[2]*a[7] - a[3]*a[6]
	b06 := a[8]*a[13] - a[9]*a[12]
	b07 := a[8]*a[14] - a[10]*a[12]
	b08 := a[8]*a[15] - a[11]*a[12]
	b09 := a[9]*a[14] - a[10]*a[13]
	b10 := a[9]*a[15] - a[11]*a[13]
	b11 := a[10]*a[15] - a[11]*a[14]

	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// inv4 replaces the 4×4 buffer with its inverse: the full adjugate is
// assembled from twelve 2×2 sub-determinants and the determinant is their
// weighted sum, so the singularity test costs nothing extra.
// Errors: ErrNotInvertible on an exactly-zero determinant. O(1).
func inv4(a []float64) error {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		return matrixErrorf(opInvert, ErrNotInvertible)
	}
	inv := 1 / det

	a[0] = (a11*b11 - a12*b10 + a13*b09) * inv
	a[1] = (a02*b10 - a01*b11 - a03*b09) * inv
	a[2] = (a31*b05 - a32*b04 + a33*b03) * inv
	a[3] = (a22*b04 - a21*b05 - a23*b03) * inv
	a[4] = (a12*b08 - a10*b11 - a13*b07) * inv
	a[5] = (a00*b11 - a02*b08 + a03*b07) * inv
	a[6] = (a32*b02 - a30*b05 - a33*b01) * inv
	a[7] = (a20*b05 - a22*b02 + a23*b01) * inv
	a[8] = (a10*b10 - a11*b08 + a13*b06) * inv
	a[9] = (a01*b08 - a00*b10 - a03*b06) * inv
	a[10] = (a30*b04 - a31*b02 + a33*b00) * inv
	a[11] = (a21*b02 - a20*b04 - a23*b00) * inv
	a[12] = (a11*b07 - a10*b09 - a12*b06) * inv
	a[13] = (a00*b09 - a01*b07 + a02*b06) * inv
	a[14] = (a31*b01 - a30*b03 - a32*b00) * inv
	a[15] = (a20*b03 - a21*b01 + a22*b00) * inv

	return nil
}
