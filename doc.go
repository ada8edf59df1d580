// Package lvlmath is a compact linear-algebra and rotation kernel for
// transforming points, directions and orientations in 3D space.
//
// 🚀 What is lvlmath?
//
//	A deterministic, CPU-bound value library that brings together:
//		• vector/ — fixed-size N-vectors with arithmetic, normalization & lerp
//		• matrix/ — column-major R×C matrices, square refinements, Mat3/Mat4
//		            with closed-form multiply / determinant / inverse
//		• quat/   — quaternion rotations: axis-angle, Euler, matrix
//		            conversions, slerp/squad interpolation, look-at
//
// ✨ Why choose lvlmath?
//
//   - Fail-fast contracts – every operation validates shapes up front and
//     returns package sentinel errors matched via errors.Is
//   - Pure values – no shared ownership, no global state, no goroutines;
//     distinct instances are always safe to use concurrently
//   - Flat-array boundary – every type imports from and exports to a flat
//     column-major scalar slice with an optional offset, ready for
//     upload to a graphics device
//
// Representation cheatsheet:
//
//	Matrix storage   column-major: element (col c, row r) at c*rows + r
//	Quaternion       (x,y,z,w) with w = cos(θ/2), (x,y,z) = sin(θ/2)·axis
//	Identity         quat.Identity() == (0,0,0,1)
//
// Dive into each package's doc.go for contracts, edge-case policy and
// complexity notes.
package lvlmath
