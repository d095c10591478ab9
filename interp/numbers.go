// SPDX-License-Identifier: MIT

package interp

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float64s converts a sample sequence of any numeric type to []float64,
// so integer-valued samples can be passed without a manual loop.
// A nil input yields nil.
func Float64s[T Number](vs []T) []float64 {
	if vs == nil {
		return nil
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}

	return out
}
