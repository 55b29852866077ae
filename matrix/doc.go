// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage that pairwise distance and
// similarity data lives in before and during hierarchical clustering.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     no-copy Flat view for hot loops (the clustering engine mutates it in place).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric) that return
//     package sentinels so callers can match them via errors.Is.
//   - Row statistics (NormalizeRowsL2, CenterRows) used by the cosine and
//     Pearson measures to turn feature vectors into similarity matrices.
//
// Pairwise matrices are O(n²) in memory; use them for item counts where that
// is acceptable (tens of thousands of items at most).
package matrix
