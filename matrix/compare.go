// SPDX-License-Identifier: MIT

// Package matrix - comparison helpers (exact and tolerance-based).
//
// Policy:
//   - Both operands must be non-nil and have identical shapes.
//   - Equal is exact (NaN equals NaN so that a table holding overflow compares
//     equal to itself); AllClose follows |a-b| ≤ atol + rtol*|b|.

package matrix

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// matrixErrorf prefixes an error with the public function tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowsOf materializes any Matrix as [][]float64. *Dense takes the flat fast-path.
func rowsOf(m Matrix) [][]float64 {
	if d, ok := m.(*Dense); ok {
		return d.ToRows()
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j], _ = m.At(i, j) // indices are in range by construction
		}
	}

	return out
}

// validatePair runs the shared nil/shape checks for binary comparisons.
func validatePair(tag string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Equal reports whether a and b hold bit-identical values in every cell.
// MAIN DESCRIPTION:
//   - Structural equality used to check that table builders are pure
//     functions of their inputs.
//
// Implementation:
//   - Stage 1: validate presence and shape.
//   - Stage 2: compare row slices with go-cmp, treating NaN as equal to NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Equal").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := validatePair("Equal", a, b); err != nil {
		return false, err
	}

	return cmp.Equal(rowsOf(a), rowsOf(b), cmpopts.EquateNaNs()), nil
}

// AllClose reports whether every pair satisfies |a-b| ≤ atol + rtol*|b|.
// Negative tolerances are normalized to their absolute value; NaN/Inf
// tolerances are rejected with ErrNaNInf.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := validatePair("AllClose", a, b); err != nil {
		return false, err
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
