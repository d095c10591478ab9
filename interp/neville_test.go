// SPDX-License-Identifier: MIT
package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinterp/interp"
)

var (
	nevilleXs = []float64{3.6, 3.8, 3.9}
	nevilleYs = []float64{1.675, 1.436, 1.318}
)

// TestNeville_Reference checks the quadratic approximation at 3.7 bit for bit.
func TestNeville_Reference(t *testing.T) {
	got, err := interp.Neville(nevilleXs, nevilleYs, 3.7, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5549999999999995, got)
	assert.InDelta(t, 1.555, got, 1e-12)
}

// TestNeville_Degrees verifies that lower degrees read the last row.
func TestNeville_Degrees(t *testing.T) {
	got, err := interp.Neville(nevilleXs, nevilleYs, 3.7, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.318, got, "degree 0 is the last sample")

	got, err = interp.Neville(nevilleXs, nevilleYs, 3.7, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5539999999999996, got, "line through the last two samples")
}

// TestNeville_ExactOnPolynomials verifies that a degree-k polynomial is
// reproduced by any k+1 consecutive samples.
func TestNeville_ExactOnPolynomials(t *testing.T) {
	got, err := interp.Neville([]float64{0, 1, 2}, []float64{1, 3, 5}, 1.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got, "f(x)=2x+1")

	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 2, 5, 10} // f(x)=x²+1
	got, err = interp.Neville(xs, ys, 1.5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)
	got, err = interp.Neville(xs, ys, 1.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)
}

// TestNeville_AtSample verifies that the full-degree value at a node is the node value.
func TestNeville_AtSample(t *testing.T) {
	for i, x := range nevilleXs {
		got, err := interp.Neville(nevilleXs, nevilleYs, x, 2)
		require.NoError(t, err)
		assert.InDelta(t, nevilleYs[i], got, 1e-12, "x=%v", x)
	}
}

// TestNeville_SinglePoint covers N=1.
func TestNeville_SinglePoint(t *testing.T) {
	got, err := interp.Neville([]float64{2}, []float64{7}, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

// TestNeville_Errors covers every input error path.
func TestNeville_Errors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		degree int
		want   error
	}{
		{"empty", nil, nil, 0, interp.ErrEmptyInput},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0, interp.ErrLengthMismatch},
		{"negative degree", nevilleXs, nevilleYs, -1, interp.ErrDegreeOutOfRange},
		{"degree too high", nevilleXs, nevilleYs, 3, interp.ErrDegreeOutOfRange},
		{"duplicate abscissa", []float64{1, 2, 1}, []float64{1, 2, 3}, 2, interp.ErrDuplicateAbscissa},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.Neville(tc.xs, tc.ys, 0.5, tc.degree)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNeville_InvalidInputUmbrella checks that shape errors share one umbrella.
func TestNeville_InvalidInputUmbrella(t *testing.T) {
	_, err := interp.Neville(nil, nil, 0, 0)
	assert.ErrorIs(t, err, interp.ErrInvalidInput)
	_, err = interp.Neville(nevilleXs, nevilleYs, 0, 9)
	assert.ErrorIs(t, err, interp.ErrInvalidInput)
	_, err = interp.Neville([]float64{1, 1}, []float64{1, 2}, 0, 1)
	assert.NotErrorIs(t, err, interp.ErrInvalidInput, "duplicates are reported on their own")
}

// TestNevilleTable_Shape verifies the table layout and fill mask.
func TestNevilleTable_Shape(t *testing.T) {
	tbl, err := interp.NevilleTable(nevilleXs, nevilleYs, 3.7)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 3, tbl.Cols())
	assert.Equal(t, 0, tbl.Base())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, j <= i, tbl.Filled(i, j), "(%d,%d)", i, j)
		}
	}
	v, err := tbl.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5554999999999994, v)
}
