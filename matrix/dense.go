// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer (Flat) for hot loops that own the matrix for the
//     duration of a call, such as the NN-chain clustering engine.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Flat: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers

	opFromRows = "NewDenseFromRows"
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf / allowInf carry the numeric policy used by Set.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // reject NaN/Inf in Set when true
	allowInf       bool      // exception: accept +Inf under validation
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: apply the numeric policy from opts.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
		allowInf:       o.allowInf,
	}, nil
}

// NewSquare creates an n×n zero matrix. It is the usual shape for pairwise data.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// NewDenseFromRows copies a slice of equally sized rows into a new Dense.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular input.
//   - Stage 2: copy rows into the flat buffer, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows,
//     ErrNaNInf when a value violates the numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch))
		}
		for j, v := range row {
			if m.rejects(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// rejects reports whether v violates the numeric policy.
func (m *Dense) rejects(v float64) bool {
	if !m.validateNaNInf {
		return false
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return true
	}

	return math.IsInf(v, 1) && !m.allowInf
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.rejects(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// SetSymmetric stores v at both (i, j) and (j, i).
func (m *Dense) SetSymmetric(i, j int, v float64) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}

// Flat returns the row-major backing buffer without copying.
// Element (i, j) lives at Flat()[i*Cols()+j]; writes are visible through m
// and bypass the numeric policy.
func (m *Dense) Flat() []float64 { return m.data }

// Row returns a no-copy view of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		allowInf:       m.allowInf,
	}
}

// String renders rows as "[a, b, c]" lines for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
