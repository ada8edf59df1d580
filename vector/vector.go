// Package vector: the Vector type, constructors and the flat-array boundary.
// Vector is a concrete, flat-storage implementation: a fixed-size tuple of
// float64 components backed by a single slice for cache friendliness.
package vector

import (
	"fmt"
	"strings"
)

// vectorErrorf wraps an underlying error with method context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// sizeMismatchf wraps ErrSizeMismatch naming both operand sizes so the
// failure is diagnosable without rerunning the operation.
func sizeMismatchf(method string, want, got int) error {
	return fmt.Errorf("Vector.%s: %d vs %d: %w", method, want, got, ErrSizeMismatch)
}

// Vector is a fixed-size ordered tuple of float64 components.
// The component count is fixed at construction and never changes.
type Vector struct {
	data []float64 // flat backing storage, length == size, exclusive ownership
}

// New creates a Vector from the given components.
// The resulting size equals len(components); zero components yield a
// zero-size vector only through NewZero, so New requires at least one.
// Complexity: O(n) time and memory.
func New(components ...float64) (*Vector, error) {
	// Validate the requested size.
	if len(components) == 0 {
		return nil, vectorErrorf("New", ErrBadSize)
	}
	// Copy into exclusively-owned storage.
	data := make([]float64, len(components))
	copy(data, components)

	return &Vector{data: data}, nil
}

// NewZero creates an n-component vector initialized to zeros.
// Complexity: O(n) time and memory.
func NewZero(n int) (*Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf("NewZero", ErrBadSize)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// Vec2 builds a 2-component vector. Complexity: O(1).
func Vec2(x, y float64) *Vector { return &Vector{data: []float64{x, y}} }

// Vec3 builds a 3-component vector. Complexity: O(1).
func Vec3(x, y, z float64) *Vector { return &Vector{data: []float64{x, y, z}} }

// Vec4 builds a 4-component vector. Complexity: O(1).
func Vec4(x, y, z, w float64) *Vector { return &Vector{data: []float64{x, y, z, w}} }

// FromSlice imports n components from src starting at offset.
// This is the flat-array import half of the upload boundary.
//
// Implementation:
//   - Stage 1: validate n > 0, offset >= 0 and offset+n <= len(src).
//   - Stage 2: copy the window into fresh storage (src is never aliased).
//
// Errors: ErrBadSize on any window violation.
// Complexity: O(n) time and memory.
func FromSlice(src []float64, offset, n int) (*Vector, error) {
	// Validate the window before touching src.
	if n <= 0 || offset < 0 || offset+n > len(src) {
		return nil, vectorErrorf("FromSlice", ErrBadSize)
	}
	data := make([]float64, n)
	copy(data, src[offset:offset+n])

	return &Vector{data: data}, nil
}

// Size returns the component count. Complexity: O(1).
func (v *Vector) Size() int {
	return len(v.data)
}

// At retrieves component i.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Size().
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf("At", ErrIndexOutOfBounds)
	}

	return v.data[i], nil
}

// SetAt assigns value x to component i.
// Returns ErrIndexOutOfBounds if i is invalid.
// Complexity: O(1).
func (v *Vector) SetAt(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf("SetAt", ErrIndexOutOfBounds)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep, independent copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &Vector{data: data}
}

// Components returns a fresh copy of the backing components.
// The returned slice is owned by the caller; mutating it does not affect v.
// Complexity: O(n).
func (v *Vector) Components() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// CopyTo writes all components into dst starting at offset.
// This is the flat-array export half of the upload boundary.
// Errors: ErrBadSize when dst cannot hold the window.
// Complexity: O(n).
func (v *Vector) CopyTo(dst []float64, offset int) error {
	if offset < 0 || offset+len(v.data) > len(dst) {
		return vectorErrorf("CopyTo", ErrBadSize)
	}
	copy(dst[offset:], v.data)

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')

	return sb.String()
}

// validatePair is the canonical binary-operation guard: both operands
// non-nil, identical sizes. Returns plain sentinels wrapped with the
// operation tag so call sites stay one-liners.
// Complexity: O(1).
func validatePair(method string, a, b *Vector) error {
	if a == nil || b == nil {
		return vectorErrorf(method, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return sizeMismatchf(method, len(a.data), len(b.data))
	}

	return nil
}
