// SPDX-License-Identifier: MIT

// Package matrix: public interfaces and the shared column-major core.
// This file intentionally contains ONLY the Matrix/Square contracts and the
// unexported buffer shared by the concrete types. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix represents a two-dimensional mutable array of float64 values in
// column-major order. Concrete types additionally declare their transpose
// type through TransposeShape.
//
// Complexity notes: all methods are O(1) except Clone/CopyTo/MakeIdentity
// (O(rows*cols)) and String.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (col, row) — column first, matching the
	// column-major data model. Returns ErrIndexOutOfBounds when either
	// index is outside the declared bounds. Complexity: O(1).
	At(col, row int) (float64, error)

	// Set assigns v at (col, row).
	// Returns ErrIndexOutOfBounds when indices are invalid. Complexity: O(1).
	Set(col, row int, v float64) error

	// Clone returns a deep copy with the same concrete type.
	// Complexity: O(rows*cols).
	Clone() Matrix

	// CopyTo writes the column-major buffer into dst starting at offset —
	// the flat-array export half of the upload boundary.
	// Returns ErrBadShape when dst cannot hold rows*cols values at offset.
	// Complexity: O(rows*cols).
	CopyTo(dst []float64, offset int) error

	// TransposeShape returns a fresh zero matrix of the concrete type this
	// type declares as its transpose (itself for square types, Dense C×R
	// for Dense R×C). This is the type-level transpose contract; the
	// Transpose kernel fills the result.
	TransposeShape() (Matrix, error)

	// MakeIdentity zeroes the buffer and sets min(rows, cols) diagonal
	// entries to 1 (two passes, no per-element branching).
	// Complexity: O(rows*cols).
	MakeIdentity()
}

// Square is the refinement of Matrix for types whose rows always equal
// columns. Dim reports that shared dimension. Generic kernels still verify
// squareness via ValidateSquare rather than trusting the interface, so a
// non-square Matrix reaching Determinant/Invert fails fast with ErrNonSquare.
type Square interface {
	Matrix

	// Dim returns the square dimension (== Rows() == Cols()).
	Dim() int
}

// core is the column-major buffer shared by every concrete type in this
// package. rows/cols are immutable after construction; data always holds
// exactly rows*cols values (enforced by constructors).
type core struct {
	rows, cols int
	data       []float64 // flat backing storage, column-major, len == rows*cols
}

// coreErrorf wraps an underlying error with indexer context.
func coreErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, col, row, err)
}

// Rows returns the number of rows. Complexity: O(1).
func (c *core) Rows() int { return c.rows }

// Cols returns the number of columns. Complexity: O(1).
func (c *core) Cols() int { return c.cols }

// index computes the flat column-major index for (col, row) or fails with
// ErrIndexOutOfBounds. Complexity: O(1).
func (c *core) index(method string, col, row int) (int, error) {
	if col < 0 || col >= c.cols {
		return 0, coreErrorf(method, col, row, ErrIndexOutOfBounds)
	}
	if row < 0 || row >= c.rows {
		return 0, coreErrorf(method, col, row, ErrIndexOutOfBounds)
	}

	// Element (col c, row r) lives at c*rows + r.
	return col*c.rows + row, nil
}

// At retrieves the element at (col, row). Complexity: O(1).
func (c *core) At(col, row int) (float64, error) {
	idx, err := c.index("At", col, row)
	if err != nil {
		return 0, err
	}

	return c.data[idx], nil
}

// Set assigns v at (col, row). Complexity: O(1).
func (c *core) Set(col, row int, v float64) error {
	idx, err := c.index("Set", col, row)
	if err != nil {
		return err
	}
	c.data[idx] = v

	return nil
}

// CopyTo writes the column-major buffer into dst starting at offset.
// Complexity: O(rows*cols).
func (c *core) CopyTo(dst []float64, offset int) error {
	if offset < 0 || offset+len(c.data) > len(dst) {
		return fmt.Errorf("Matrix.CopyTo: %w", ErrBadShape)
	}
	copy(dst[offset:], c.data)

	return nil
}

// MakeIdentity zeroes the buffer and then writes min(rows, cols) diagonal
// ones. Two passes (fill, then diagonal) avoid a branch per element.
// Complexity: O(rows*cols).
func (c *core) MakeIdentity() {
	for i := range c.data {
		c.data[i] = 0
	}
	n := c.rows
	if c.cols < n {
		n = c.cols
	}
	for d := 0; d < n; d++ {
		c.data[d*c.rows+d] = 1
	}
}

// cloneData returns a fresh copy of the backing buffer.
func (c *core) cloneData() []float64 {
	out := make([]float64, len(c.data))
	copy(out, c.data)

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, walking columns left to right. Complexity: O(rows*cols).
func (c *core) String() string {
	var sb strings.Builder
	for r := 0; r < c.rows; r++ {
		sb.WriteByte('[')
		for col := 0; col < c.cols; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", c.data[col*c.rows+r])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
