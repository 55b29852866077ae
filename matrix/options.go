// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective configuration.
//
// Notes:
//   - validateNaNInf controls whether Set rejects non-finite values at all.
//   - allowInf is a narrow exception for +Inf as "unreachable" in distance
//     matrices. Under validation, NaN and -Inf remain rejected even when
//     allowInf is enabled.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInf permits +Inf values (e.g. "never merge" distances).
	DefaultAllowInf = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	allowInf       bool    // DefaultAllowInf
}

// WithEpsilon sets the tolerance used by ValidateSymmetricOpts.
// Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables the finite-only guard on Set.
// Use only for controlled ingestion where the caller sanitizes later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInf permits +Inf on Set while keeping NaN and -Inf rejected.
func WithAllowInf() Option {
	return func(o *Options) { o.allowInf = true }
}

// gatherOptions resolves defaults and then applies opts in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
