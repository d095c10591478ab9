// SPDX-License-Identifier: MIT

// Package interp - validation utilities shared by every builder.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Distinctness of abscissas is NOT checked here: the recurrence detects a
//     zero denominator at the failing division, which also covers Hermite
//     tables where duplicated anchors are legal.
package interp

// validateSamples checks the parallel xs/ys pair and returns N.
// Complexity: O(1).
func validateSamples(xs, ys []float64) (int, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return 0, ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}

	return len(xs), nil
}

// validateSlopes checks that slopes is aligned with N samples.
// Complexity: O(1).
func validateSlopes(slopes []float64, n int) error {
	if len(slopes) != n {
		return ErrLengthMismatch
	}

	return nil
}

// validateDegree checks 0 ≤ degree ≤ n-1.
// Complexity: O(1).
func validateDegree(degree, n int) error {
	if degree < 0 || degree >= n {
		return ErrDegreeOutOfRange
	}

	return nil
}
