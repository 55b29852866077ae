// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: square Matrix m, tolerance tol (negative values are taken by magnitude).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²). Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	// Fast path on *Dense: read the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !within(d.data[i*n+j], d.data[j*n+i], tol) {
					return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
				}
			}
		}

		return nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return matrixErrorf("ValidateSymmetric", err)
			}
			b, err := m.At(j, i)
			if err != nil {
				return matrixErrorf("ValidateSymmetric", err)
			}
			if !within(a, b, tol) {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateSymmetricOpts is ValidateSymmetric with the tolerance taken from opts
// (WithEpsilon), defaulting to DefaultEpsilon.
func ValidateSymmetricOpts(m Matrix, opts ...Option) error {
	return ValidateSymmetric(m, gatherOptions(opts...).eps)
}

// within treats equal infinities as equal; NaN never matches.
func within(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol
}
