// Package matrix: Dense is the generic R×C concrete type.
// Dense stores elements in a flat column-major slice; its declared transpose
// type is Dense with the dimensions swapped.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense constructor context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a column-major rows×cols matrix of float64 values.
type Dense struct {
	core
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("New", ErrBadShape)
	}

	return &Dense{core{rows: rows, cols: cols, data: make([]float64, rows*cols)}}, nil
}

// NewSquare creates an n×n Dense matrix initialized to zeros.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Dense, error) {
	if n <= 0 {
		return nil, denseErrorf("NewSquare", ErrBadShape)
	}

	return &Dense{core{rows: n, cols: n, data: make([]float64, n*n)}}, nil
}

// NewIdentity creates an n×n identity Dense matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	m.MakeIdentity()

	return m, nil
}

// DenseFromSlice imports rows*cols values from src starting at offset, in
// column-major order — the flat-array import half of the upload boundary.
//
// Implementation:
//   - Stage 1: validate the shape and the src window (ErrBadShape).
//   - Stage 2: under WithValidateNaNInf, reject NaN/±Inf (ErrNonFinite).
//   - Stage 3: copy the window into exclusively-owned storage.
//
// Complexity: O(rows*cols) time and memory.
func DenseFromSlice(src []float64, offset, rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("FromSlice", ErrBadShape)
	}
	n := rows * cols
	if offset < 0 || offset+n > len(src) {
		return nil, denseErrorf("FromSlice", ErrBadShape)
	}
	window := src[offset : offset+n]
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err := validateSlice("Dense.FromSlice", window); err != nil {
			return nil, err
		}
	}
	data := make([]float64, n)
	copy(data, window)

	return &Dense{core{rows: rows, cols: cols, data: data}}, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(rows*cols) time and memory.
func (m *Dense) Clone() Matrix {
	return &Dense{core{rows: m.rows, cols: m.cols, data: m.cloneData()}}
}

// TransposeShape declares Dense C×R as the transpose type of Dense R×C and
// returns a fresh zero instance of it. Complexity: O(rows*cols).
func (m *Dense) TransposeShape() (Matrix, error) {
	return NewDense(m.cols, m.rows)
}

// Dim returns the square dimension when Rows == Cols and 0 otherwise.
// Kernels never rely on Dim for squareness — ValidateSquare is the contract.
// Complexity: O(1).
func (m *Dense) Dim() int {
	if m.rows != m.cols {
		return 0
	}

	return m.rows
}
