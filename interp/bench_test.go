// SPDX-License-Identifier: MIT
package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvinterp/interp"
)

// samplesOf returns n Chebyshev-spaced samples of sin on [0, π].
func samplesOf(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = math.Pi / 2 * (1 - math.Cos(math.Pi*float64(2*i+1)/float64(2*n)))
		ys[i] = math.Sin(xs[i])
	}

	return xs, ys
}

func BenchmarkNeville(b *testing.B) {
	xs, ys := samplesOf(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interp.Neville(xs, ys, 1.0, len(xs)-1)
	}
}

func BenchmarkDividedDifferenceTable(b *testing.B) {
	xs, ys := samplesOf(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interp.DividedDifferenceTable(xs, ys)
	}
}

func BenchmarkHermiteTable(b *testing.B) {
	xs, ys := samplesOf(32)
	slopes := make([]float64, len(xs))
	for i, x := range xs {
		slopes[i] = math.Cos(x)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interp.HermiteTable(xs, ys, slopes)
	}
}
