// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix that backs the
// divided-difference tables of package interp.
//
// What:
//
//   - Dense: flat row-major storage, error-returning At/Set (never panics on
//     bad indices), deep Clone, readable String.
//   - Numeric policy: Set rejects NaN/±Inf by default; tables that must let
//     overflow propagate opt out with WithoutNaNInfValidation.
//   - Helpers: Diagonal (with offset), ToRows, Equal, AllClose.
//   - Validators: ValidateNotNil, ValidateSameShape.
//
// Complexity:
//
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/ToRows/Equal: O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch,
//     ErrNaNInf, ErrNilMatrix.
package matrix
