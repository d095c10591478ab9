// SPDX-License-Identifier: MIT

package interp

import "fmt"

// Neville - Neville's iterated interpolation
//
// Description:
//
//	Evaluates the interpolating polynomial at x without computing its
//	coefficients. Column j of the table holds the values at x of the
//	degree-j polynomials through consecutive runs of j+1 samples.
//
// Algorithm Outline:
//  1. N = len(xs). Allocate N×N table T, T[i][0] = ys[i].
//  2. For i = 1..N-1, j = 1..i:
//     T[i][j] = ((x - xs[i-j])*T[i][j-1] - (x - xs[i])*T[i-1][j-1]) / (xs[i] - xs[i-j])
//  3. Result = T[N-1][degree].
//
// Complexity:
//
//	Time   = O(N²)
//	Memory = O(N²)
//
// Errors:
//   - ErrEmptyInput, ErrLengthMismatch - malformed samples.
//   - ErrDegreeOutOfRange               - degree ∉ [0, N-1].
//   - ErrDuplicateAbscissa              - two equal x-values.
func Neville(xs, ys []float64, x float64, degree int, opts ...Option) (float64, error) {
	n, err := validateSamples(xs, ys)
	if err != nil {
		return 0, fmt.Errorf("Neville: %w", err)
	}
	if err = validateDegree(degree, n); err != nil {
		return 0, fmt.Errorf("Neville: degree %d of %d points: %w", degree, n, err)
	}

	t, err := NevilleTable(xs, ys, x, opts...)
	if err != nil {
		return 0, err
	}

	return t.At(n-1, degree)
}

// NevilleTable builds and returns the whole Neville table for query x.
// Row N-1 holds the approximations of increasing degree anchored at the
// last sample. Options: WithDuplicateTolerance.
// Complexity: O(N²) time and memory.
func NevilleTable(xs, ys []float64, x float64, opts ...Option) (*Table, error) {
	n, err := validateSamples(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("NevilleTable: %w", err)
	}
	o := gatherOptions(opts...)

	t, err := seededTable(ys, n)
	if err != nil {
		return nil, fmt.Errorf("NevilleTable: %w", err)
	}
	rec := Recurrence{
		Base:      0,
		Anchor:    func(row int) float64 { return xs[row] },
		Numerator: NevilleNumerator(x),
		Tolerance: o.dupTol,
	}
	if _, err = rec.Apply(t); err != nil {
		return nil, fmt.Errorf("NevilleTable: %w", err)
	}

	return t, nil
}

// seededTable allocates an n×n base-0 table with column 0 = ys.
func seededTable(ys []float64, n int) (*Table, error) {
	t, err := NewTable(n, n, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = t.Seed(i, 0, ys[i]); err != nil {
			return nil, err
		}
	}

	return t, nil
}
