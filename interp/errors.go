// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.
// All builders return these sentinels (possibly wrapped with a function tag);
// tests and callers match them via errors.Is. No builder panics on user input.

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for malformed sample sets and indices.
	// Every input-shape sentinel below wraps it.
	ErrInvalidInput = errors.New("interp: invalid input")

	// ErrEmptyInput indicates that a sample sequence has no points.
	ErrEmptyInput = fmt.Errorf("%w: sample sequences must be non-empty", ErrInvalidInput)

	// ErrLengthMismatch indicates parallel sequences (xs, ys, slopes, table rows)
	// of different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: sequences must have equal length", ErrInvalidInput)

	// ErrDegreeOutOfRange indicates a Neville degree outside [0, N-1].
	ErrDegreeOutOfRange = fmt.Errorf("%w: degree out of range", ErrInvalidInput)

	// ErrTooFewPoints indicates a layout that cannot hold the seeded columns,
	// e.g. a square Hermite table built from a single point.
	ErrTooFewPoints = fmt.Errorf("%w: not enough sample points", ErrInvalidInput)

	// ErrDuplicateAbscissa indicates a zero denominator caused by two
	// coincident anchor x-values.
	ErrDuplicateAbscissa = errors.New("interp: duplicate abscissa (zero denominator)")

	// ErrNilTable indicates that a nil *Table was passed to an evaluator.
	ErrNilTable = errors.New("interp: nil table")
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSignificantDigits  = "interp: WithSignificantDigits: n must be in [0, 17]"
	panicDuplicateTolerance = "interp: WithDuplicateTolerance: eps must be finite, non-negative"
)
