package measure

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/dtw"
	"github.com/katalvlaran/hclust/matrix"
)

// Series is the dynamic time warping distance over []float64 series of any
// length.
type Series struct {
	Options dtw.Options
	Workers int
}

var _ cluster.Measure[[]float64] = Series{}

// DTW returns a Series measure with the given DTW options.
func DTW(opts dtw.Options) Series {
	return Series{Options: opts}
}

// Kind returns cluster.Distance.
func (s Series) Kind() cluster.Kind { return cluster.Distance }

// CreateMatrix computes the DTW distance between every pair of series.
// Pairs that cannot be aligned within the window get +Inf.
func (s Series) CreateMatrix(ctx context.Context, items [][]float64) (*matrix.Dense, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	// Validate up front so the pairwise function cannot fail.
	if _, err := dtw.Distance([]float64{0}, []float64{0}, s.Options); err != nil {
		return nil, fmt.Errorf("measure: dtw: %w", err)
	}
	for i, it := range items {
		if len(it) == 0 {
			return nil, fmt.Errorf("measure: dtw: item %d: %w", i, dtw.ErrEmptySequence)
		}
	}

	f := Func[[]float64]{
		Fn: func(a, b []float64) float64 {
			d, _ := dtw.Distance(a, b, s.Options)
			return d
		},
		MeasureKind: cluster.Distance,
		Workers:     s.Workers,
	}

	return f.CreateMatrix(ctx, items)
}
