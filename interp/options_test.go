// SPDX-License-Identifier: MIT
package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvinterp/interp"
)

// TestDefaultOptions_Documented verifies the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := interp.DefaultOptions()
	assert.Equal(t, interp.DefaultSignificantDigits, o.SignificantDigits())
	assert.Equal(t, interp.DefaultDuplicateTolerance, o.DuplicateTolerance())
	assert.Equal(t, interp.DefaultFullHermiteWidth, o.FullHermiteWidth())
}

// TestOptions_Setters ensures each Option toggles exactly its field.
func TestOptions_Setters(t *testing.T) {
	o := interp.DefaultOptions()
	interp.WithSignificantDigits(3)(&o)
	assert.Equal(t, 3, o.SignificantDigits())
	assert.Zero(t, o.DuplicateTolerance())

	interp.WithDuplicateTolerance(1e-9)(&o)
	assert.Equal(t, 1e-9, o.DuplicateTolerance())
	assert.False(t, o.FullHermiteWidth())

	interp.WithFullHermiteWidth()(&o)
	assert.True(t, o.FullHermiteWidth())
	assert.Equal(t, 3, o.SignificantDigits())
}

// TestOptions_Panics covers nonsensical option values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { interp.WithSignificantDigits(-1) })
	assert.Panics(t, func() { interp.WithSignificantDigits(interp.MaxSignificantDigits + 1) })
	assert.NotPanics(t, func() { interp.WithSignificantDigits(interp.MaxSignificantDigits) })
	assert.Panics(t, func() { interp.WithDuplicateTolerance(-1e-3) })
	assert.Panics(t, func() { interp.WithDuplicateTolerance(math.NaN()) })
	assert.Panics(t, func() { interp.WithDuplicateTolerance(math.Inf(1)) })
	assert.NotPanics(t, func() { interp.WithDuplicateTolerance(0) })
}

// TestWithDuplicateTolerance_NearlyEqual rejects abscissas closer than eps.
func TestWithDuplicateTolerance_NearlyEqual(t *testing.T) {
	xs := []float64{1, 1 + 1e-12, 2}
	ys := []float64{1, 2, 3}

	_, err := interp.DividedDifferenceTable(xs, ys)
	assert.NoError(t, err, "exact-zero policy accepts distinct values")

	_, err = interp.DividedDifferenceTable(xs, ys, interp.WithDuplicateTolerance(1e-9))
	assert.ErrorIs(t, err, interp.ErrDuplicateAbscissa)
	_, err = interp.Neville(xs, ys, 1.5, 2, interp.WithDuplicateTolerance(1e-9))
	assert.ErrorIs(t, err, interp.ErrDuplicateAbscissa)
}

// TestRoundSignificant covers the rounding helper.
func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want float64
	}{
		{9.210500000000001, 7, 9.2105},
		{17.00166666666675, 7, 17.00167},
		{-141.82916666666722, 7, -141.8292},
		{0.000123456789, 3, 0.000123},
		{1234567.89, 3, 1230000},
		{0, 7, 0},
		{1.23456789, 0, 1.23456789},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, interp.RoundSignificant(tc.v, tc.n), "v=%v n=%d", tc.v, tc.n)
	}
	assert.True(t, math.IsNaN(interp.RoundSignificant(math.NaN(), 7)))
	assert.True(t, math.IsInf(interp.RoundSignificant(math.Inf(-1), 7), -1))
}
