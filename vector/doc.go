// SPDX-License-Identifier: MIT

// Package vector provides fixed-size N-component vectors of float64 values.
//
// The vector package provides:
//
//   - A single flat-storage Vector type whose size is fixed at construction
//     (2, 3 and 4 component conveniences included).
//   - Mutating methods (Add, Scale, Normalize, Lerp, Floor, ...) and
//     copy-producing package functions (Add(a,b), Normalized(v), ...).
//   - A flat-array import/export boundary (FromSlice, CopyTo) with an
//     optional starting offset, suitable for GPU-uniform upload layers.
//   - Integer-upload conversions (ToInt32, ToUint32) with a strict
//     finite-value precondition.
//
// Policy highlights:
//
//   - Every binary operation validates operand sizes and fails fast with
//     ErrSizeMismatch naming both sizes.
//   - Normalize of an exactly-zero vector leaves it unchanged (no NaN).
//   - Lerp never clamps t; extrapolation is allowed.
//   - NaN components never compare equal, even to themselves.
//
// All values are owned exclusively by their Vector; Clone produces an
// independent copy. Read-only concurrent use of distinct instances is safe.
package vector
