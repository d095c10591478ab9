// SPDX-License-Identifier: MIT

package interp

import (
	"math"
	"strconv"
)

// RoundSignificant rounds v to n significant decimal digits, the way the
// "%.7g" verb renders it, and parses the text back. Going through the
// shortest decimal text keeps the result exact-match comparable with
// literals such as 9.2105. n <= 0, zero, NaN and ±Inf are returned as is.
func RoundSignificant(v float64, n int) float64 {
	if n <= 0 || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', n, 64), 64)
	if err != nil {
		return v // unreachable for finite v
	}

	return r
}

// significantRounder returns the Round hook for a Recurrence, or nil when
// rounding is disabled.
func significantRounder(n int) func(float64) float64 {
	if n <= 0 {
		return nil
	}

	return func(v float64) float64 { return RoundSignificant(v, n) }
}
