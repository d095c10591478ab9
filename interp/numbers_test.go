// SPDX-License-Identifier: MIT
package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinterp/interp"
)

// TestFloat64s converts integer and float32 samples.
func TestFloat64s(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, interp.Float64s([]int{0, 1, 2}))
	assert.Equal(t, []float64{-3, 7}, interp.Float64s([]int8{-3, 7}))
	assert.Equal(t, []float64{0.5, 2}, interp.Float64s([]float32{0.5, 2}))
	assert.Equal(t, []float64{}, interp.Float64s([]uint{}))
	assert.Nil(t, interp.Float64s[int](nil))
}

// TestFloat64s_IntegerSamples feeds converted samples to a builder.
func TestFloat64s_IntegerSamples(t *testing.T) {
	got, err := interp.Neville(interp.Float64s([]int{0, 1, 2}), interp.Float64s([]int{1, 3, 5}), 1.5, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}
