// SPDX-License-Identifier: MIT

// Package interp: functional configuration for the table builders.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Each option documents which builders read it; others ignore it.
package interp

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSignificantDigits is the rounding applied to every entry the
	// divided-difference builder stores. 0 disables rounding.
	DefaultSignificantDigits = 7

	// MaxSignificantDigits is the largest precision that still changes a float64.
	MaxSignificantDigits = 17

	// DefaultDuplicateTolerance treats only an exact zero denominator as a
	// duplicate abscissa.
	DefaultDuplicateTolerance = 0.0

	// DefaultFullHermiteWidth keeps the square 2N×2N Hermite layout.
	DefaultFullHermiteWidth = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	sigDigits   int     // DividedDifferenceTable only; DefaultSignificantDigits
	dupTol      float64 // all builders; DefaultDuplicateTolerance
	fullHermite bool    // HermiteTable only; DefaultFullHermiteWidth
}

// DefaultOptions returns the documented zero-config behavior.
func DefaultOptions() Options {
	return Options{
		sigDigits:   DefaultSignificantDigits,
		dupTol:      DefaultDuplicateTolerance,
		fullHermite: DefaultFullHermiteWidth,
	}
}

// SignificantDigits reports the rounding precision (0 = none).
func (o Options) SignificantDigits() int { return o.sigDigits }

// DuplicateTolerance reports the denominator magnitude treated as zero.
func (o Options) DuplicateTolerance() float64 { return o.dupTol }

// FullHermiteWidth reports whether Hermite tables get the extra column.
func (o Options) FullHermiteWidth() bool { return o.fullHermite }

// gatherOptions folds opts over the defaults in call order (last wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSignificantDigits sets the rounding applied by DividedDifferenceTable
// before each entry is stored. n=0 keeps full float64 precision.
// Panics if n is outside [0, MaxSignificantDigits].
func WithSignificantDigits(n int) Option {
	if n < 0 || n > MaxSignificantDigits {
		panic(panicSignificantDigits)
	}

	return func(o *Options) { o.sigDigits = n }
}

// WithDuplicateTolerance makes every builder reject denominators with
// |den| <= eps as ErrDuplicateAbscissa. Panics on negative, NaN or Inf eps.
func WithDuplicateTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicDuplicateTolerance)
	}

	return func(o *Options) { o.dupTol = eps }
}

// WithFullHermiteWidth allocates Hermite tables as 2N×(2N+1) so that the
// top-order divided difference has a column to live in.
func WithFullHermiteWidth() Option {
	return func(o *Options) { o.fullHermite = true }
}
