// SPDX-License-Identifier: MIT

// Package matrix offers column-major R×C matrices with generic kernels and
// closed-form fixed-size specializations.
//
// The matrix package provides:
//
//   - Dense, the generic R×C type; Mat3 and Mat4, fixed square
//     specializations with closed-form determinant/inverse/multiply.
//   - Package-level kernels (Add, Sub, Scale, Mul, MulInto, Transpose,
//     Determinant, Invert) that validate fail-fast and dispatch to a
//     concrete-type fast path, falling back to the At/Set interface path
//     for foreign Matrix implementations.
//   - A flat-array import/export boundary (FromSlice constructors, CopyTo)
//     with an optional starting offset — the sole contract GPU-upload
//     layers rely on.
//
// STORAGE & INDEXING
//
// Storage is column-major: element (col c, row r) lives at flat index
// c*rows + r, and the indexers take (col, row) in that order. Buffers always
// hold exactly rows*cols values; constructors reject anything else with
// ErrBadShape.
//
// TRANSPOSE TYPES
//
// Every concrete type declares, at the type level, which concrete type its
// transpose produces via TransposeShape(): Dense R×C yields Dense C×R;
// Mat3 and Mat4 yield themselves. The Transpose kernel builds into that
// declared type and re-checks the swapped dimensions defensively
// (ErrTransposeType).
//
// NUMERIC POLICY
//
// Invert rejects only an exactly-zero determinant (ErrNotInvertible); there
// is no epsilon tolerance by design — near-singular matrices are legitimate
// input with reduced but defined precision. The generic Determinant is a
// first-row cofactor recursion with factorial cost: it exists as a
// dimension-agnostic reference path and must never appear in hot loops;
// Mat3/Mat4 dispatch to O(1) closed forms.
//
// Mutating kernels that read their own operands (MulInto, Invert,
// TransposeInPlace) buffer intermediate values before writing, so passing
// the receiver as an operand is safe by construction.
package matrix
