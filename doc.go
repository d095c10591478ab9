// Package lvinterp is a small toolkit for polynomial interpolation of
// sampled functions, built around one divided-difference table.
//
// What is in the box?
//
//	• Neville's method: the value of the interpolant at a point, any degree
//	• Newton's divided differences: the coefficient table and its evaluation
//	• Hermite interpolation: values and first derivatives at every sample
//	• numpy-style printing of the resulting tables
//	• The interpolate command: single methods from flags, or batches from a config file
//
// Why lvinterp?
//
//   - One recurrence: every table is filled by the same parameterised sweep
//   - Errors, not panics: malformed samples come back as sentinel errors
//   - Explicit formatting: print options are values, never global state
//
// Layout:
//
//	matrix/          - dense row-major storage, comparisons, validators
//	interp/          - tables, recurrence, Neville, Newton, Hermite, residuals
//	numfmt/          - scalar, list and matrix rendering
//	cli/             - cobra command tree, gcfg configuration, reports
//	cmd/interpolate/ - the interpolate binary
//
// Quick example:
//
//	t, _ := interp.DividedDifferenceTable(xs, ys)
//	v, _ := interp.EvaluateNewton(t, xs, 7.3)
//
//	go install github.com/katalvlaran/lvinterp/cmd/interpolate@latest
package lvinterp
