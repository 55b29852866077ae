package measure

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
)

var (
	// ErrEmptyItems indicates that CreateMatrix was called with no items.
	ErrEmptyItems = errors.New("measure: no items")

	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("measure: vectors differ in length")

	// ErrNilFunc indicates a Func without Fn.
	ErrNilFunc = errors.New("measure: nil pairwise function")
)

// Func adapts a pairwise function to cluster.Measure.
//
// Fn must be symmetric; it is evaluated once per unordered pair (and once
// per item for the similarity diagonal). Workers bounds the number of
// concurrent row bands; 0 means GOMAXPROCS.
type Func[C any] struct {
	Fn          func(a, b C) float64
	MeasureKind cluster.Kind
	Workers     int
}

var _ cluster.Measure[string] = Func[string]{}

// Kind returns f.MeasureKind.
func (f Func[C]) Kind() cluster.Kind { return f.MeasureKind }

// CreateMatrix evaluates Fn over every pair of items.
// A NaN result fails with matrix.ErrNaNInf; +Inf is allowed for distances.
// Complexity: O(n²) calls to Fn, O(n²) memory.
func (f Func[C]) CreateMatrix(ctx context.Context, items []C) (*matrix.Dense, error) {
	if f.Fn == nil {
		return nil, ErrNilFunc
	}
	n := len(items)
	if n == 0 {
		return nil, ErrEmptyItems
	}
	m, err := matrix.NewSquare(n, matrix.WithAllowInf())
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}

	workers := f.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if f.MeasureKind == cluster.Similarity {
				if err := m.Set(i, i, f.Fn(items[i], items[i])); err != nil {
					return fmt.Errorf("measure: (%d, %d): %w", i, i, err)
				}
			}
			for j := i + 1; j < n; j++ {
				if err := m.SetSymmetric(i, j, f.Fn(items[i], items[j])); err != nil {
					return fmt.Errorf("measure: (%d, %d): %w", i, j, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}
