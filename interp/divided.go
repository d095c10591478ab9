// SPDX-License-Identifier: MIT

package interp

import "fmt"

// DividedDifferenceTable builds Newton's divided-difference table.
// MAIN DESCRIPTION:
//   - N×N table with T[i][0] = ys[i] and, for 1 ≤ j ≤ i < N,
//     T[i][j] = (T[i][j-1] - T[i-1][j-1]) / (xs[i] - xs[i-j]).
//   - The diagonal T[k][k] holds the Newton coefficients c0..c_{N-1}
//     (see Table.Coefficients).
//
// Implementation:
//   - Stage 1: validate samples, resolve options.
//   - Stage 2: seed column 0 with ys.
//   - Stage 3: run the shared Recurrence with anchors xs and, by default,
//     rounding to DefaultSignificantDigits before each store.
//
// Behavior highlights:
//   - Rounded entries feed the next column, so the whole table is the
//     presentation-rounded one; pass WithSignificantDigits(0) for full precision.
//   - Pure function of its inputs: two calls yield Equal tables.
//
// Errors:
//   - ErrEmptyInput, ErrLengthMismatch, ErrDuplicateAbscissa (wrapped).
//
// Complexity:
//   - Time O(N²), Space O(N²).
func DividedDifferenceTable(xs, ys []float64, opts ...Option) (*Table, error) {
	n, err := validateSamples(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("DividedDifferenceTable: %w", err)
	}
	o := gatherOptions(opts...)

	t, err := seededTable(ys, n)
	if err != nil {
		return nil, fmt.Errorf("DividedDifferenceTable: %w", err)
	}
	rec := Recurrence{
		Base:      0,
		Anchor:    func(row int) float64 { return xs[row] },
		Numerator: DifferenceNumerator,
		Round:     significantRounder(o.sigDigits),
		Tolerance: o.dupTol,
	}
	if _, err = rec.Apply(t); err != nil {
		return nil, fmt.Errorf("DividedDifferenceTable: %w", err)
	}

	return t, nil
}
