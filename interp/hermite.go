// SPDX-License-Identifier: MIT

package interp

import "fmt"

// HermiteTable builds the divided-difference table of Hermite interpolation,
// matching both values and first derivatives at every sample.
// MAIN DESCRIPTION:
//   - Every sample is doubled: rows 2k and 2k+1 both anchor at xs[k] and
//     hold ys[k]. The first difference across a doubled pair is undefined
//     (0/0), so it is seeded with the known slope instead of computed.
//
// Implementation:
//   - Stage 1: validate xs/ys/slopes; N ≥ 2 for the square layout.
//   - Stage 2: allocate 2N×2N (2N×(2N+1) with WithFullHermiteWidth), base 1.
//   - Stage 3: seed T[r][0] = xs[r/2], T[r][1] = ys[r/2], T[0][2] = 0,
//     T[2k+1][2] = slopes[k].
//   - Stage 4: ApplyDividedDifferences fills every unseeded cell.
//
// Behavior highlights:
//   - Seeded slopes are returned exactly as given, including zero slopes.
//   - In the square layout the top-order difference has no column and is
//     skipped; Coefficients then stops at order 2N-2.
//
// Errors:
//   - ErrEmptyInput, ErrLengthMismatch, ErrTooFewPoints, ErrDuplicateAbscissa (wrapped).
//
// Complexity:
//   - Time O(N²), Space O(N²).
func HermiteTable(xs, ys, slopes []float64, opts ...Option) (*Table, error) {
	n, err := validateSamples(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("HermiteTable: %w", err)
	}
	if err = validateSlopes(slopes, n); err != nil {
		return nil, fmt.Errorf("HermiteTable: slopes: %w", err)
	}
	o := gatherOptions(opts...)

	rows, cols := 2*n, 2*n
	if o.fullHermite {
		cols++
	}
	if cols < 3 {
		return nil, fmt.Errorf("HermiteTable: %d point(s) leave no slope column: %w", n, ErrTooFewPoints)
	}

	t, err := NewTable(rows, cols, 1)
	if err != nil {
		return nil, fmt.Errorf("HermiteTable: %w", err)
	}
	for r := 0; r < rows; r++ {
		if err = t.Seed(r, 0, xs[r/2]); err != nil {
			return nil, err
		}
		if err = t.Seed(r, 1, ys[r/2]); err != nil {
			return nil, err
		}
	}
	// Row 0 has no first difference; the cell is pinned to zero.
	if err = t.Seed(0, 2, 0); err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		if err = t.Seed(2*k+1, 2, slopes[k]); err != nil {
			return nil, err
		}
	}

	if _, err = ApplyDividedDifferences(t, opts...); err != nil {
		return nil, fmt.Errorf("HermiteTable: %w", err)
	}

	return t, nil
}

// Hermite is the Hermite interpolating polynomial in Newton form over the
// doubled nodes z = (x0, x0, x1, x1, ...).
type Hermite struct {
	coeffs []float64 // superdiagonal of the full-width table, len 2N
	nodes  []float64 // doubled abscissas, len 2N
}

// NewHermite builds the degree-(2N-1) Hermite polynomial. The table is
// always built with WithFullHermiteWidth so no coefficient is lost.
// Errors: as HermiteTable.
// Complexity: O(N²).
func NewHermite(xs, ys, slopes []float64, opts ...Option) (*Hermite, error) {
	opts = append(opts[:len(opts):len(opts)], WithFullHermiteWidth())
	t, err := HermiteTable(xs, ys, slopes, opts...)
	if err != nil {
		return nil, err
	}
	nodes := make([]float64, t.Rows())
	for r := range nodes {
		nodes[r], _ = t.At(r, 0)
	}

	return &Hermite{coeffs: t.Coefficients(), nodes: nodes}, nil
}

// Coefficients returns a copy of the Newton coefficients over the doubled nodes.
func (p *Hermite) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Degree returns the formal degree 2N-1.
func (p *Hermite) Degree() int { return len(p.coeffs) - 1 }

// Eval returns the polynomial value at x. Complexity: O(N).
func (p *Hermite) Eval(x float64) float64 {
	return newtonSum(p.coeffs, p.nodes, x)
}

// EvalAll evaluates the polynomial at all the given x values, writing into
// out[0] when provided.
func (p *Hermite) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(p, xs, out)
}
