// SPDX-License-Identifier: MIT
// Package vector: arithmetic kernels.
// Mutating methods overwrite the receiver in place; the copy-producing
// counterparts are package functions that allocate a fresh result and never
// touch their operands. All binary kernels share one validation path.

package vector

import "math"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opDiv   = "DivScalar"
	opLerp  = "Lerp"
	opDot   = "Dot"
	opEqEps = "EqualsEpsilon"
)

// addSub computes dst[i] = a[i] + sign*b[i] for sign ∈ {+1, -1}.
// Folding the sign into a multiplier keeps Add/Sub on a single kernel with
// no branch in the hot loop (teacher-style shared kernel).
// Caller guarantees dst, a, b share a size; dst may alias a or b since the
// update is strictly element-local.
func addSub(dst, a, b []float64, sign float64) {
	for i := range dst {
		dst[i] = a[i] + sign*b[i]
	}
}

// Add performs the in-place sum v += other.
// Errors: ErrNilVector, ErrSizeMismatch (message names both sizes).
// Complexity: O(n).
func (v *Vector) Add(other *Vector) error {
	if err := validatePair(opAdd, v, other); err != nil {
		return err
	}
	addSub(v.data, v.data, other.data, +1)

	return nil
}

// Sub performs the in-place difference v -= other.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector) Sub(other *Vector) error {
	if err := validatePair(opSub, v, other); err != nil {
		return err
	}
	addSub(v.data, v.data, other.data, -1)

	return nil
}

// Add returns a fresh vector a + b; neither operand is mutated.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n) time and memory.
func Add(a, b *Vector) (*Vector, error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}
	res := &Vector{data: make([]float64, len(a.data))}
	addSub(res.data, a.data, b.data, +1)

	return res, nil
}

// Sub returns a fresh vector a - b; neither operand is mutated.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n) time and memory.
func Sub(a, b *Vector) (*Vector, error) {
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}
	res := &Vector{data: make([]float64, len(a.data))}
	addSub(res.data, a.data, b.data, -1)

	return res, nil
}

// Scale multiplies every component by s in place. Complexity: O(n).
func (v *Vector) Scale(s float64) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// Scaled returns a fresh copy of v scaled by s; a nil v yields nil.
// Complexity: O(n).
func Scaled(v *Vector, s float64) *Vector {
	if v == nil {
		return nil
	}
	res := v.Clone()
	res.Scale(s)

	return res
}

// DivScalar divides every component by s in place.
// An exactly-zero divisor fails with ErrDivideByZero; the receiver is left
// untouched on failure.
// Complexity: O(n).
func (v *Vector) DivScalar(s float64) error {
	if s == 0 {
		return vectorErrorf(opDiv, ErrDivideByZero)
	}
	inv := 1 / s
	for i := range v.data {
		v.data[i] *= inv
	}

	return nil
}

// LengthSquared returns the sum of squared components. Complexity: O(n).
func (v *Vector) LengthSquared() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return sum
}

// Length returns the Euclidean norm √(Σ x²). Complexity: O(n).
func (v *Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize scales v to unit length in place.
// Policy: if the length is exactly zero the vector is left unchanged — this
// is a deliberate no-op, not an error, so callers never receive NaN.
// Complexity: O(n).
func (v *Vector) Normalize() {
	length := v.Length()
	if length == 0 {
		return // zero vector stays zero
	}
	inv := 1 / length
	for i := range v.data {
		v.data[i] *= inv
	}
}

// Normalized returns a fresh unit-length copy of v (zero stays zero); a nil
// v yields nil.
// Complexity: O(n).
func Normalized(v *Vector) *Vector {
	if v == nil {
		return nil
	}
	res := v.Clone()
	res.Normalize()

	return res
}

// Lerp interpolates v toward target in place: v = (1-t)*v + t*target.
// t is NOT clamped; t outside [0,1] extrapolates along the same line.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector) Lerp(target *Vector, t float64) error {
	if err := validatePair(opLerp, v, target); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = (1-t)*v.data[i] + t*target.data[i]
	}

	return nil
}

// Lerp returns a fresh interpolation (1-t)*a + t*b without mutating operands.
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n) time and memory.
func Lerp(a, b *Vector, t float64) (*Vector, error) {
	if err := validatePair(opLerp, a, b); err != nil {
		return nil, err
	}
	res := &Vector{data: make([]float64, len(a.data))}
	for i := range res.data {
		res.data[i] = (1-t)*a.data[i] + t*b.data[i]
	}

	return res, nil
}

// Dot returns the scalar product Σ v[i]*other[i].
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := validatePair(opDot, v, other); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}

// Equals reports exact component-wise equality.
// NaN components are never equal, even to themselves (IEEE semantics kept
// deliberately: `==` on NaN is false).
// A size mismatch is simply "not equal", not an error.
// Complexity: O(n).
func (v *Vector) Equals(other *Vector) bool {
	if other == nil || len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// EqualsEpsilon reports component-wise equality within tolerance eps.
//
// Implementation:
//   - Stage 1: validate eps is finite and >= 0 (ErrInvalidEpsilon) and the
//     operands share a size (ErrSizeMismatch).
//   - Stage 2: compare |a-b| <= eps per component; any NaN component fails
//     the comparison because NaN satisfies no ordering.
//
// Complexity: O(n).
func (v *Vector) EqualsEpsilon(other *Vector, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, vectorErrorf(opEqEps, ErrInvalidEpsilon)
	}
	if err := validatePair(opEqEps, v, other); err != nil {
		return false, err
	}
	for i := range v.data {
		d := math.Abs(v.data[i] - other.data[i])
		// NaN propagates into d and fails the <= test, as required.
		if !(d <= eps) {
			return false, nil
		}
	}

	return true, nil
}
