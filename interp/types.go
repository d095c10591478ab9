// SPDX-License-Identifier: MIT

// Package interp: domain types shared by the table builders and evaluators.
package interp

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lvinterp/matrix"
)

// Interpolator evaluates an interpolating polynomial.
//
// EvalAll writes into out[0] when provided (it must have len(xs) entries)
// and returns it as a convenience; extra output slices are ignored.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = (*Newton)(nil)
	_ Interpolator = (*Hermite)(nil)
)

// Table is a divided-difference table: a dense matrix plus a per-cell
// filled mask.
//   - base is the column holding order-0 values (0 for Neville and plain
//     divided differences, 1 for Hermite where column 0 holds anchors).
//   - filled[i*cols+j] is true once (i,j) was seeded or computed; the
//     recurrence never overwrites a filled cell, so a legitimately zero
//     value is never confused with "not yet computed".
type Table struct {
	m      *matrix.Dense // backing storage; overflow propagates (no NaN/Inf policy)
	filled []bool        // row-major, len == rows*cols
	base   int           // column of order-0 values
}

// NewTable allocates a zero, fully-unfilled rows×cols table whose order-0
// values live in column base. Use Seed to pre-fill cells and
// ApplyDividedDifferences (or a Recurrence) to fill the rest.
// Errors: matrix.ErrInvalidDimensions; ErrInvalidInput when base is not a column.
// Complexity: O(rows*cols).
func NewTable(rows, cols, base int) (*Table, error) {
	m, err := matrix.NewDense(rows, cols, matrix.WithoutNaNInfValidation())
	if err != nil {
		return nil, err
	}
	if base < 0 || base >= cols {
		return nil, fmt.Errorf("NewTable: base %d: %w", base, ErrInvalidInput)
	}

	return &Table{m: m, filled: make([]bool, rows*cols), base: base}, nil
}

// Rows returns the number of table rows.
func (t *Table) Rows() int { return t.m.Rows() }

// Cols returns the number of table columns.
func (t *Table) Cols() int { return t.m.Cols() }

// Base returns the column that holds the order-0 values.
func (t *Table) Base() int { return t.base }

// At returns the entry at (i, j); unfilled in-range cells read as 0.
// Errors: matrix.ErrOutOfRange (wrapped).
func (t *Table) At(i, j int) (float64, error) { return t.m.At(i, j) }

// Filled reports whether (i, j) was seeded or computed.
// Out-of-range coordinates report false.
func (t *Table) Filled(i, j int) bool {
	if i < 0 || i >= t.m.Rows() || j < 0 || j >= t.m.Cols() {
		return false
	}

	return t.filled[i*t.m.Cols()+j]
}

// Seed stores v at (i, j) and marks the cell filled so that the recurrence
// leaves it untouched.
// Errors: matrix.ErrOutOfRange (wrapped).
func (t *Table) Seed(i, j int, v float64) error {
	if err := t.m.Set(i, j, v); err != nil {
		return err
	}
	t.filled[i*t.m.Cols()+j] = true

	return nil
}

// Matrix returns an independent copy of the table values.
// Complexity: O(rows*cols).
func (t *Table) Matrix() matrix.Matrix { return t.m.Clone() }

// Coefficients returns the Newton coefficients c0..c_{k}: the diagonal that
// starts at the order-0 column (main diagonal for base 0, superdiagonal for
// Hermite tables).
// Complexity: O(rows).
func (t *Table) Coefficients() []float64 {
	c, err := t.m.Diagonal(t.base)
	if err != nil {
		// base < Cols() holds for every table built in this package
		panic(fmt.Sprintf("interp: table base %d outside %d columns", t.base, t.m.Cols()))
	}

	return c
}

// Equal reports whether t and o have the same shape, values, base and
// filled mask. Nil tables are equal only to each other.
// Complexity: O(rows*cols).
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.base != o.base {
		return false
	}
	same, err := matrix.Equal(t.m, o.m)
	if err != nil || !same {
		return false
	}

	return cmp.Equal(t.filled, o.filled)
}

// String renders the table values for diagnostics (see package numfmt for
// presentation output).
func (t *Table) String() string { return t.m.String() }
