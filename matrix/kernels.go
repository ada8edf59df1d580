// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition/subtraction, scalar scaling, matrix multiplication,
// transpose and comparisons. All kernels perform strict fail-fast validation
// through the central validators and return the package sentinels wrapped
// with an operation tag.
//
// Dispatch discipline (the package invariant):
//   - Fast-path: in-package concrete types expose their flat column-major
//     buffer via rawData; kernels run single flat loops on it.
//   - Fallback: foreign Matrix implementations go through At/Set with fixed
//     col→row loop order. Both paths produce identical results.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opMulInto   = "MulInto"
	opTranspose = "Transpose"
	opEqEps     = "EqualsEpsilon"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers still match with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// readAll materializes any Matrix into a column-major buffer.
// Fast-path returns a copy of the raw buffer; fallback walks At in fixed
// col→row order. A copy (not an alias) keeps downstream kernels safe when
// the destination aliases the source.
// Complexity: O(rows*cols).
func readAll(tag string, m Matrix) ([]float64, error) {
	if raw := rawData(m); raw != nil {
		out := make([]float64, len(raw))
		copy(out, raw)

		return out, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var v float64
	var err error
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v, err = m.At(c, r)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out[c*rows+r] = v
		}
	}

	return out, nil
}

// writeAll stores a column-major buffer into any Matrix.
// Complexity: O(rows*cols).
func writeAll(tag string, m Matrix, src []float64) error {
	if raw := rawData(m); raw != nil {
		copy(raw, src)

		return nil
	}
	rows, cols := m.Rows(), m.Cols()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if err := m.Set(c, r, src[c*rows+r]); err != nil {
				return matrixErrorf(tag, err)
			}
		}
	}

	return nil
}

// addSub computes dst = a + sign*b element-wise for sign ∈ {+1, -1}.
// Folding the sign into a multiplier keeps Add/Sub on one kernel with no
// branch in the hot loop. Caller guarantees shapes already validated.
func addSub(tag string, dst, a, b Matrix, sign float64) error {
	av, err := readAll(tag, a)
	if err != nil {
		return err
	}
	bv, err := readAll(tag, b)
	if err != nil {
		return err
	}
	for i := range av {
		av[i] += sign * bv[i]
	}

	return writeAll(tag, dst, av)
}

// Add returns a fresh matrix a + b. The result has the same concrete type
// as the first operand (via Clone), so Mat4 + Mat4 stays a Mat4.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows*cols) time and memory.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := addSub(opAdd, res, a, b, +1); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns a fresh matrix a - b with the concrete type of a.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows*cols) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := addSub(opSub, res, a, b, -1); err != nil {
		return nil, err
	}

	return res, nil
}

// AddInPlace performs dst += b.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows*cols).
func AddInPlace(dst, b Matrix) error {
	if err := ValidateBinarySameShape(dst, b); err != nil {
		return matrixErrorf(opAdd, err)
	}

	return addSub(opAdd, dst, dst, b, +1)
}

// SubInPlace performs dst -= b.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows*cols).
func SubInPlace(dst, b Matrix) error {
	if err := ValidateBinarySameShape(dst, b); err != nil {
		return matrixErrorf(opSub, err)
	}

	return addSub(opSub, dst, dst, b, -1)
}

// ScaleInPlace multiplies every element of m by alpha.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols).
func ScaleInPlace(m Matrix, alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	buf, err := readAll(opScale, m)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] *= alpha
	}

	return writeAll(opScale, m, buf)
}

// Scale returns a fresh matrix alpha * m with the concrete type of m.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols) time and memory.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	if err := ScaleInPlace(res, alpha); err != nil {
		return nil, err
	}

	return res, nil
}

// MulInto computes dst = a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows (ErrIncompatibleDimensions) and
//     that dst declares exactly a.Rows × b.Cols (ErrResultSizeMismatch).
//   - Stage 2: if dst, a and b are all *Mat4, run the fully unrolled
//     64-multiply/48-add closed form directly on the flat buffers.
//     Otherwise run the generic triple sum
//     result(r,c) = Σ_k a(r,k)·b(k,c) with fixed c→r→k order.
//
// Both paths accumulate into a scratch buffer and write dst last, so
// MulInto(m, m, m) is safe by construction (no aliasing hazard).
//
// Errors: ErrNilMatrix, ErrIncompatibleDimensions, ErrResultSizeMismatch.
// Complexity: O(rows·cols·k); the Mat4 path is O(1) with no index math.
func MulInto(dst, a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateResultShape(dst, a.Rows(), b.Cols()); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	// Closed-form fast path: all three operands fixed 4×4.
	if d4, ok := dst.(*Mat4); ok {
		if a4, okA := a.(*Mat4); okA {
			if b4, okB := b.(*Mat4); okB {
				mul4(d4.data, a4.data, b4.data)

				return nil
			}
		}
	}

	// Generic path: materialize operands, accumulate, then write.
	av, err := readAll(opMulInto, a)
	if err != nil {
		return err
	}
	bv, err := readAll(opMulInto, b)
	if err != nil {
		return err
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, rows*cols)
	var sum float64
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			sum = 0
			for k := 0; k < inner; k++ {
				// a(r,k) at k*rows + r; b(k,c) at c*inner + k.
				sum += av[k*rows+r] * bv[c*inner+k]
			}
			out[c*rows+r] = sum
		}
	}

	return writeAll(opMulInto, dst, out)
}

// Mul returns a fresh product a × b. When both operands are *Mat4 the
// result is a *Mat4 built by the closed form; any other combination yields
// a Dense of shape a.Rows × b.Cols through the generic kernel.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows·cols·k).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var dst Matrix
	if _, okA := a.(*Mat4); okA {
		if _, okB := b.(*Mat4); okB {
			dst = NewMat4()
		}
	}
	if dst == nil {
		d, err := NewDense(a.Rows(), b.Cols())
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		dst = d
	}
	if err := MulInto(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// mul4 is the fully unrolled 4×4 column-major product out = a × b:
// 64 multiplies, 48 adds, no index arithmetic. The accumulation happens in
// locals, so out may alias a or b.
func mul4(out, a, b []float64) {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	out[0] = b0*a00 + b1*a10 + b2*a20 + b3*a30
	out[1] = b0*a01 + b1*a11 + b2*a21 + b3*a31
	out[2] = b0*a02 + b1*a12 + b2*a22 + b3*a32
	out[3] = b0*a03 + b1*a13 + b2*a23 + b3*a33

	b0, b1, b2, b3 = b[4], b[5], b[6], b[7]
	out[4] = b0*a00 + b1*a10 + b2*a20 + b3*a30
	out[5] = b0*a01 + b1*a11 + b2*a21 + b3*a31
	out[6] = b0*a02 + b1*a12 + b2*a22 + b3*a32
	out[7] = b0*a03 + b1*a13 + b2*a23 + b3*a33

	b0, b1, b2, b3 = b[8], b[9], b[10], b[11]
	out[8] = b0*a00 + b1*a10 + b2*a20 + b3*a30
	out[9] = b0*a01 + b1*a11 + b2*a21 + b3*a31
	out[10] = b0*a02 + b1*a12 + b2*a22 + b3*a32
	out[11] = b0*a03 + b1*a13 + b2*a23 + b3*a33

	b0, b1, b2, b3 = b[12], b[13], b[14], b[15]
	out[12] = b0*a00 + b1*a10 + b2*a20 + b3*a30
	out[13] = b0*a01 + b1*a11 + b2*a21 + b3*a31
	out[14] = b0*a02 + b1*a12 + b2*a22 + b3*a32
	out[15] = b0*a03 + b1*a13 + b2*a23 + b3*a33
}

// Transpose returns mᵀ built into the concrete type m declares as its
// transpose type.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); obtain the declared type via
//     TransposeShape and defensively re-check the swapped dimensions
//     (ErrTransposeType on any contract violation).
//   - Stage 2: map (col,row) → (row,col); flat fast-path when both sides
//     expose raw buffers, At/Set fallback otherwise.
//
// Errors: ErrNilMatrix, ErrTransposeType.
// Complexity: O(rows*cols).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := m.TransposeShape()
	if err != nil {
		return nil, matrixErrorf(opTranspose, fmt.Errorf("%w: %w", ErrTransposeType, err))
	}
	if res == nil {
		return nil, matrixErrorf(opTranspose, ErrTransposeType)
	}
	// Defensive check: the declared type must carry the swapped dimensions.
	if res.Rows() != m.Cols() || res.Cols() != m.Rows() {
		return nil, matrixErrorf(opTranspose, ErrTransposeType)
	}

	rows, cols := m.Rows(), m.Cols()
	src, err := readAll(opTranspose, m)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(src))
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			// (col c, row r) of m lands at (col r, row c) of mᵀ,
			// whose column height is cols.
			out[r*cols+c] = src[c*rows+r]
		}
	}
	if err = writeAll(opTranspose, res, out); err != nil {
		return nil, err
	}

	return res, nil
}

// TransposeInPlace swaps m across its main diagonal in place.
// Defined only for square matrices (receiver and result share dimensions);
// element pairs are swapped once, so no scratch buffer is needed.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func TransposeInPlace(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	n := m.Rows()

	// Fast path: swap within the raw buffer.
	if raw := rawData(m); raw != nil {
		for c := 0; c < n; c++ {
			for r := c + 1; r < n; r++ {
				raw[c*n+r], raw[r*n+c] = raw[r*n+c], raw[c*n+r]
			}
		}

		return nil
	}

	// Fallback: At/Set swap over the strict upper triangle.
	var x, y float64
	var err error
	for c := 0; c < n; c++ {
		for r := c + 1; r < n; r++ {
			if x, err = m.At(c, r); err != nil {
				return matrixErrorf(opTranspose, err)
			}
			if y, err = m.At(r, c); err != nil {
				return matrixErrorf(opTranspose, err)
			}
			if err = m.Set(c, r, y); err != nil {
				return matrixErrorf(opTranspose, err)
			}
			if err = m.Set(r, c, x); err != nil {
				return matrixErrorf(opTranspose, err)
			}
		}
	}

	return nil
}

// Equals reports exact element-wise equality. Shape disagreement is simply
// "not equal"; NaN elements are never equal, even to themselves.
// Complexity: O(rows*cols).
func Equals(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	av, err := readAll(opEqEps, a)
	if err != nil {
		return false
	}
	bv, err := readAll(opEqEps, b)
	if err != nil {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}

	return true
}

// EqualsEpsilon reports element-wise equality within tolerance eps.
// Mirrors vector semantics: eps must be finite and >= 0, NaN elements never
// compare equal, and shape disagreement is an error (unlike Equals, the
// caller asked for a quantified comparison).
// Errors: ErrInvalidEpsilon, ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(rows*cols).
func EqualsEpsilon(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateEpsilon(eps); err != nil {
		return false, matrixErrorf(opEqEps, err)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqEps, err)
	}
	av, err := readAll(opEqEps, a)
	if err != nil {
		return false, err
	}
	bv, err := readAll(opEqEps, b)
	if err != nil {
		return false, err
	}
	for i := range av {
		// NaN propagates into the difference and fails the <= test.
		if !(math.Abs(av[i]-bv[i]) <= eps) {
			return false, nil
		}
	}

	return true, nil
}

// ApproxEqual compares a and b under the configured numeric policy
// (DefaultEpsilon unless WithEpsilon overrides).
// Errors: as EqualsEpsilon.
// Complexity: O(rows*cols).
func ApproxEqual(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return EqualsEpsilon(a, b, o.eps)
}
