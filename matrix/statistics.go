// SPDX-License-Identifier: MIT

// Package matrix - row statistics used by similarity measures.
//
// Exposed API:
//   - CenterRows(X)       -> (Xc, means)
//   - NormalizeRowsL2(X)  -> (Y, norms)
//
// Each row of X is one item's feature vector; the outputs feed cosine and
// Pearson similarity (a Gram product of normalized rows).
//
// Determinism & Performance:
//   - Fixed loop order; results are fresh *Dense copies, X is never mutated.

package matrix

import "math"

const (
	opCenterRows      = "CenterRows"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

// CenterRows returns a copy of X with each row's mean subtracted, plus the means.
//
// Implementation:
//   - Stage 1: validate X (non-nil) and copy it into a fresh Dense.
//   - Stage 2: compute the mean per row.
//   - Stage 3: subtract the row mean from every element of the row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterRows(X Matrix) (*Dense, []float64, error) {
	out, err := denseCopy(X, opCenterRows)
	if err != nil {
		return nil, nil, err
	}

	means := make([]float64, out.r)
	var s float64
	for i := 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		s = 0
		for _, v := range row {
			s += v
		}
		means[i] = s / float64(out.c)
		for j := range row {
			row[j] -= means[i]
		}
	}

	return out, means, nil
}

// NormalizeRowsL2 returns a copy of X with every row scaled to unit L2 norm,
// plus the original norms. Degenerate rows (norm == 0) are left unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X Matrix) (*Dense, []float64, error) {
	out, err := denseCopy(X, opNormalizeRowsL2)
	if err != nil {
		return nil, nil, err
	}

	norms := make([]float64, out.r)
	var sq float64
	for i := 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		sq = 0
		for _, v := range row {
			sq += v * v
		}
		norms[i] = math.Sqrt(sq)
		if norms[i] == 0 {
			continue
		}
		inv := 1 / norms[i]
		for j := range row {
			row[j] *= inv
		}
	}

	return out, norms, nil
}

// denseCopy materializes any Matrix as an independent *Dense.
func denseCopy(X Matrix, op string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if d, ok := X.(*Dense); ok {
		return d.CloneDense(), nil
	}

	out, err := NewDense(X.Rows(), X.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
