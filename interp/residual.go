// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ResidualSummary describes how closely an interpolant reproduces the
// samples it was built from. An exact interpolant has every field ≈ 0.
type ResidualSummary struct {
	Residuals []float64 // p(xs[i]) - ys[i], in sample order
	MaxAbs    float64   // max |residual|
	MeanAbs   float64   // mean |residual|
	StdDev    float64   // population standard deviation of the residuals
}

// NodeResiduals evaluates p at every sample abscissa and summarizes the
// deviation from the sample ordinates.
// Errors: ErrEmptyInput, ErrLengthMismatch (wrapped); ErrInvalidInput when p is nil.
// Complexity: O(N·cost(Eval)).
func NodeResiduals(p Interpolator, xs, ys []float64) (ResidualSummary, error) {
	if p == nil {
		return ResidualSummary{}, fmt.Errorf("NodeResiduals: nil interpolator: %w", ErrInvalidInput)
	}
	if _, err := validateSamples(xs, ys); err != nil {
		return ResidualSummary{}, fmt.Errorf("NodeResiduals: %w", err)
	}

	res := p.EvalAll(xs)
	abs := make([]float64, len(res))
	for i := range res {
		res[i] -= ys[i]
		abs[i] = math.Abs(res[i])
	}

	// stats only fails on empty input, which validateSamples already excluded.
	maxAbs, err := stats.Max(abs)
	if err != nil {
		return ResidualSummary{}, fmt.Errorf("NodeResiduals: %w", err)
	}
	meanAbs, err := stats.Mean(abs)
	if err != nil {
		return ResidualSummary{}, fmt.Errorf("NodeResiduals: %w", err)
	}
	sd, err := stats.StandardDeviation(res)
	if err != nil {
		return ResidualSummary{}, fmt.Errorf("NodeResiduals: %w", err)
	}

	return ResidualSummary{Residuals: res, MaxAbs: maxAbs, MeanAbs: meanAbs, StdDev: sd}, nil
}
