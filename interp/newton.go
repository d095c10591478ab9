// SPDX-License-Identifier: MIT

package interp

import "fmt"

// EvaluateNewton approximates f(value) from a divided-difference table and
// the abscissas it was built on, using the incremental Newton form
//
//	result = c0; span = 1
//	for k = 1..: span *= (value - xs[k-1]); result += c_k * span
//
// where c_k are t.Coefficients(). Passing only the first m abscissas
// evaluates the degree m-1 polynomial through the first m samples. For a
// Hermite table pass the doubled nodes (column 0 of the table).
//
// Errors:
//   - ErrNilTable          - t is nil.
//   - ErrLengthMismatch    - len(xs) is 0 or exceeds t.Rows().
//
// Complexity: O(N) given the O(N²) table.
func EvaluateNewton(t *Table, xs []float64, value float64) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("EvaluateNewton: %w", ErrNilTable)
	}
	if len(xs) == 0 || len(xs) > t.Rows() {
		return 0, fmt.Errorf("EvaluateNewton: %d abscissas for %d rows: %w", len(xs), t.Rows(), ErrLengthMismatch)
	}
	c := t.Coefficients()
	if len(c) > len(xs) {
		c = c[:len(xs)]
	}

	return newtonSum(c, xs, value), nil
}

// newtonSum evaluates Σ c_k Π_{m<k} (value - nodes[m]) reusing the running
// product. len(nodes) >= len(coeffs)-1 is the caller's contract.
func newtonSum(coeffs, nodes []float64, value float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[0]
	span := 1.0
	for k := 1; k < len(coeffs); k++ {
		span *= value - nodes[k-1]
		result += float64(coeffs[k] * span) // no FMA: match the two-step rounding
	}

	return result
}

// Newton is the interpolating polynomial in Newton form.
type Newton struct {
	coeffs []float64 // c0..c_{N-1}
	nodes  []float64 // copy of xs
}

// NewNewton builds the Newton polynomial through (xs, ys).
// Coefficients are kept at full precision unless the caller passes
// WithSignificantDigits explicitly.
// Errors: as DividedDifferenceTable.
// Complexity: O(N²).
func NewNewton(xs, ys []float64, opts ...Option) (*Newton, error) {
	opts = append([]Option{WithSignificantDigits(0)}, opts...)
	t, err := DividedDifferenceTable(xs, ys, opts...)
	if err != nil {
		return nil, err
	}
	nodes := make([]float64, len(xs))
	copy(nodes, xs)

	return &Newton{coeffs: t.Coefficients(), nodes: nodes}, nil
}

// Coefficients returns a copy of c0..c_{N-1}.
func (p *Newton) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Degree returns the formal degree N-1.
func (p *Newton) Degree() int { return len(p.coeffs) - 1 }

// Eval returns the polynomial value at x. Complexity: O(N).
func (p *Newton) Eval(x float64) float64 {
	return newtonSum(p.coeffs, p.nodes, x)
}

// EvalAll evaluates the polynomial at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (p *Newton) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(p, xs, out)
}

// evalAll is the shared EvalAll body.
func evalAll(p Interpolator, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = p.Eval(x)
	}

	return out[0]
}
