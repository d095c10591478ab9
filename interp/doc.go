// SPDX-License-Identifier: MIT

// Package interp computes polynomial interpolation of sample points with
// four classical divided-difference techniques.
//
// What:
//
//   - Neville:                 value of the interpolant at x, at a chosen degree.
//   - DividedDifferenceTable:  Newton's table; its diagonal is the coefficient set.
//   - EvaluateNewton:          Newton forward form evaluated from a table.
//   - HermiteTable:            doubled table matching values and first derivatives.
//
// All three tables are filled by one parameterised Recurrence. Cells carry a
// filled mask, so pre-seeded values (Hermite slopes) are never overwritten
// and a computed zero is never recomputed.
//
// Why:
//
//   - Neville evaluates without coefficients, one query at a time.
//   - Newton pays O(N²) once, then O(N) per query.
//   - Hermite uses derivative data to double the polynomial degree.
//
// Usage:
//
//	xs := []float64{7.2, 7.4, 7.5, 7.6}
//	ys := []float64{23.5492, 25.3913, 26.8224, 27.4589}
//	t, err := interp.DividedDifferenceTable(xs, ys)
//	if err != nil { ... }
//	fx, err := interp.EvaluateNewton(t, xs, 7.3)
//
// Complexity:
//
//   - Table builders: O(N²) time and memory; Hermite works on 2N rows.
//   - EvaluateNewton, Newton.Eval, Hermite.Eval: O(N).
//
// Errors:
//
//   - ErrInvalidInput umbrella: ErrEmptyInput, ErrLengthMismatch,
//     ErrDegreeOutOfRange, ErrTooFewPoints.
//   - ErrDuplicateAbscissa: zero denominator from coincident x-values.
//   - ErrNilTable: nil table handed to an evaluator.
//
// Concurrency:
//
//   - Functions share no state and allocate a fresh table per call; they are
//     safe to call from multiple goroutines. A *Table is not synchronized.
package interp
