// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllCloseRTol is the relative tolerance used by AllClose callers
	// that have no better knowledge of their data scale.
	DefaultAllCloseRTol = 1e-9

	// DefaultAllCloseATol is the absolute tolerance companion of DefaultAllCloseRTol.
	DefaultAllCloseATol = 1e-12
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// defaultOptions returns the documented zero-config behavior.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions folds opts over the defaults in call order (last wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithoutNaNInfValidation lets Set store NaN and ±Inf.
// Divided-difference tables use it so that overflow propagates as plain
// IEEE-754 arithmetic instead of being reported as a policy violation.
func WithoutNaNInfValidation() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithNaNInfValidation restores the default finite-only policy.
func WithNaNInfValidation() Option {
	return func(o *Options) { o.validateNaNInf = true }
}
