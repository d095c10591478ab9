// SPDX-License-Identifier: MIT

// Package interp - the shared triangular table-fill recurrence.
//
// Every builder in this package fills a lower-triangular band with
//
//	T[i][j] = Numerator(T[i][j-1], T[i-1][j-1], Anchor(i), Anchor(i-k)) / (Anchor(i) - Anchor(i-k))
//
// where k = j - Base is the order of the difference. The three builders only
// differ in where the order-0 column sits, where anchors come from, and in
// the numerator (plain difference vs. Neville's query-weighted difference).
package interp

import (
	"fmt"
	"math"
)

// NumeratorFunc combines the left and diagonal-left neighbours of a cell.
// hi is the anchor of the current row, lo the anchor k rows above.
type NumeratorFunc func(left, diag, hi, lo float64) float64

// DifferenceNumerator is the divided-difference numerator: left - diag.
// Order matters; diag - left flips every sign of the table.
func DifferenceNumerator(left, diag, _, _ float64) float64 {
	return left - diag
}

// NevilleNumerator returns the numerator of Neville's recursion at query x:
// (x - lo)*left - (x - hi)*diag.
func NevilleNumerator(x float64) NumeratorFunc {
	return func(left, diag, hi, lo float64) float64 {
		// explicit conversions keep the products from being fused into an FMA
		return float64((x-lo)*left) - float64((x-hi)*diag)
	}
}

// Recurrence describes one parameterisation of the table fill.
type Recurrence struct {
	// Base is the column holding the order-0 values.
	Base int
	// Anchor returns the abscissa associated with a row.
	Anchor func(row int) float64
	// Numerator combines neighbours; nil means DifferenceNumerator.
	Numerator NumeratorFunc
	// Round, when non-nil, is applied to each entry before it is stored.
	Round func(float64) float64
	// Tolerance: a denominator with |den| <= Tolerance is a duplicate abscissa.
	Tolerance float64
}

// Apply fills every unfilled cell of the band in place and returns t.
// MAIN DESCRIPTION:
//   - For i = 1..rows-1 and j = Base+1..min(i+Base, cols-1), compute the
//     order-(j-Base) entry from its left and diagonal-left neighbours.
//
// Implementation:
//   - Stage 1: validate the table and the parameterisation.
//   - Stage 2: row-major sweep; skip filled cells (pre-seeded values win).
//   - Stage 3: reject a zero denominator before dividing; round; store; mark filled.
//
// Behavior highlights:
//   - Out-of-bounds cells of a row are skipped, never an error.
//   - The first zero denominator aborts the whole call: the table is left
//     partially filled and must be discarded by the caller.
//
// Errors:
//   - ErrNilTable; ErrInvalidInput when Base/Anchor are unusable;
//     ErrDuplicateAbscissa wrapped with the failing coordinates.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func (r Recurrence) Apply(t *Table) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	rows, cols := t.Rows(), t.Cols()
	if r.Anchor == nil || r.Base < 0 || r.Base >= cols {
		return nil, fmt.Errorf("Recurrence.Apply: %w", ErrInvalidInput)
	}
	num := r.Numerator
	if num == nil {
		num = DifferenceNumerator
	}

	var (
		i, j, k, last  int
		left, diag, hi float64
		lo, den, value float64
	)
	for i = 1; i < rows; i++ {
		last = i + r.Base
		if last > cols-1 {
			last = cols - 1
		}
		hi = r.Anchor(i)
		for j = r.Base + 1; j <= last; j++ {
			if t.Filled(i, j) {
				continue // seeded (e.g. a Hermite slope)
			}
			k = j - r.Base
			lo = r.Anchor(i - k)
			den = hi - lo
			if math.Abs(den) <= r.Tolerance {
				return nil, fmt.Errorf("Recurrence.Apply(%d,%d): %w", i, j, ErrDuplicateAbscissa)
			}
			left, _ = t.At(i, j-1)   // in range: j-1 >= Base >= 0
			diag, _ = t.At(i-1, j-1) // in range: i-1 >= 0
			value = num(left, diag, hi, lo) / den
			if r.Round != nil {
				value = r.Round(value)
			}
			if err := t.Seed(i, j, value); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// ApplyDividedDifferences runs the recurrence on a table whose column 0
// holds the anchor x-values and column 1 the order-0 values, filling every
// cell that was not seeded beforehand. The table must have been created with
// base 1. Returns the same table.
// Complexity: O(rows*cols).
func ApplyDividedDifferences(t *Table, opts ...Option) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.Base() != 1 {
		return nil, fmt.Errorf("ApplyDividedDifferences: base %d: %w", t.Base(), ErrInvalidInput)
	}
	o := gatherOptions(opts...)
	rec := Recurrence{
		Base: 1,
		Anchor: func(row int) float64 {
			v, _ := t.At(row, 0)
			return v
		},
		Numerator: DifferenceNumerator,
		Tolerance: o.dupTol,
	}

	return rec.Apply(t)
}
