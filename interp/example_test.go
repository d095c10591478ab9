// SPDX-License-Identifier: MIT
package interp_test

import (
	"fmt"

	"github.com/katalvlaran/lvinterp/interp"
	"github.com/katalvlaran/lvinterp/numfmt"
)

// ExampleNeville approximates f(3.7) with the quadratic through three samples.
func ExampleNeville() {
	xs := []float64{3.6, 3.8, 3.9}
	ys := []float64{1.675, 1.436, 1.318}

	v, err := interp.Neville(xs, ys, 3.7, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(numfmt.Repr(v))
	// Output: 1.5549999999999995
}

// ExampleDividedDifferenceTable prints the Newton coefficients c1..c3,
// rounded to seven significant digits.
func ExampleDividedDifferenceTable() {
	xs := []float64{7.2, 7.4, 7.5, 7.6}
	ys := []float64{23.5492, 25.3913, 26.8224, 27.4589}

	t, err := interp.DividedDifferenceTable(xs, ys)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(numfmt.List(t.Coefficients()[1:]))

	v, _ := interp.EvaluateNewton(t, xs, 7.3)
	fmt.Println(numfmt.Repr(v))
	// Output:
	// [9.2105, 17.00167, -141.8292]
	// 24.016574899999995
}

// ExampleHermiteTable prints a Hermite table for p(x)=x².
func ExampleHermiteTable() {
	t, err := interp.HermiteTable([]float64{0, 1}, []float64{0, 1}, []float64{0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := numfmt.DefaultOptions().Matrix(t.Matrix())
	fmt.Println(s)
	// Output:
	// [[0. 0. 0. 0.]
	//  [0. 0. 0. 0.]
	//  [1. 1. 1. 1.]
	//  [1. 1. 2. 1.]]
}
