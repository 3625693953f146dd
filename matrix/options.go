// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the sparse builder. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (IsSymmetric / CheckSymmetric).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in
	// Builder.Add and FromDense.
	DefaultValidateNaNInf = true
)

// Options holds the numeric policy of a Builder. Fields are unexported;
// callers configure through Option constructors.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// Option mutates Options. Constructors below validate their arguments.
type Option func(*Options)

// WithEpsilon sets the structural tolerance. Panics if eps is negative or NaN.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("matrix: WithEpsilon requires eps >= 0")
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables finite-value checks on ingestion.
// Intended for trusted inputs on hot paths.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
