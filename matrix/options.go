// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, each flag impacts behavior.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Public entry points consume ...Option; Options fields stay unexported.
//
// Notes:
//   - Strict finite-value validation applies at INGESTION (FromSlice
//     constructors), not to Set: indexers are bounds-checked only, so the
//     kernel surface stays branch-free and policy stays explicit.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon is the non-negative tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// flat-array ingestion. Off by default: raw upload buffers are trusted
	// unless the caller opts in.
	DefaultValidateNaNInf = false
)

// Internal panic message (no magic strings).
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque; public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance used by ApproxEqual.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if ValidateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on flat-array
// ingestion (FromSlice constructors reject NaN/±Inf with ErrNonFinite).
// Complexity: O(1) to set; ingestion pays O(rows*cols) for the scan.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables ingestion validation (the default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
