package measure

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
)

// Vector is a measure over equal-length []float64 items.
//
// Items are first copied into a row matrix and optionally transformed
// (normalised, centred); pairs are then scored row against row.
type Vector struct {
	name    string
	kind    cluster.Kind
	prepare func(X *matrix.Dense) (*matrix.Dense, error)
	score   func(x, y []float64) float64

	// Workers bounds parallelism; 0 means GOMAXPROCS.
	Workers int
}

var _ cluster.Measure[[]float64] = (*Vector)(nil)

// Euclidean returns the L2 distance measure.
func Euclidean() *Vector {
	return &Vector{name: "euclidean", kind: cluster.Distance, score: euclidean}
}

// Manhattan returns the L1 distance measure.
func Manhattan() *Vector {
	return &Vector{name: "manhattan", kind: cluster.Distance, score: manhattan}
}

// Cosine returns the cosine similarity measure. A zero vector has
// similarity 0 to everything, itself included.
func Cosine() *Vector {
	return &Vector{name: "cosine", kind: cluster.Similarity, prepare: normalize, score: dot}
}

// Pearson returns the Pearson correlation similarity measure. A constant
// vector has correlation 0 to everything, itself included.
func Pearson() *Vector {
	return &Vector{name: "pearson", kind: cluster.Similarity, prepare: centerNormalize, score: dot}
}

// Kind reports whether scores are distances or similarities.
func (v *Vector) Kind() cluster.Kind { return v.kind }

// String returns the measure name.
func (v *Vector) String() string { return v.name }

// CreateMatrix scores every pair of items.
//
// Errors: ErrEmptyItems, ErrDimensionMismatch, and matrix.ErrNaNInf for
// non-finite components.
func (v *Vector) CreateMatrix(ctx context.Context, items [][]float64) (*matrix.Dense, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for i, it := range items {
		if len(it) != len(items[0]) {
			return nil, fmt.Errorf("measure: %s: item %d has %d components, want %d: %w",
				v.name, i, len(it), len(items[0]), ErrDimensionMismatch)
		}
	}
	if len(items[0]) == 0 {
		return nil, fmt.Errorf("measure: %s: zero-length vectors: %w", v.name, ErrDimensionMismatch)
	}

	X, err := matrix.NewDenseFromRows(items)
	if err != nil {
		return nil, fmt.Errorf("measure: %s: %w", v.name, err)
	}
	if v.prepare != nil {
		if X, err = v.prepare(X); err != nil {
			return nil, fmt.Errorf("measure: %s: %w", v.name, err)
		}
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	rows := Func[int]{
		Fn:          func(i, j int) float64 { return v.score(X.Row(i), X.Row(j)) },
		MeasureKind: v.kind,
		Workers:     v.Workers,
	}

	return rows.CreateMatrix(ctx, idx)
}

func normalize(X *matrix.Dense) (*matrix.Dense, error) {
	out, _, err := matrix.NormalizeRowsL2(X)
	return out, err
}

func centerNormalize(X *matrix.Dense) (*matrix.Dense, error) {
	centered, _, err := matrix.CenterRows(X)
	if err != nil {
		return nil, err
	}

	return normalize(centered)
}

func euclidean(x, y []float64) float64 {
	s := 0.0
	for k := range x {
		d := x[k] - y[k]
		s += d * d
	}

	return math.Sqrt(s)
}

func manhattan(x, y []float64) float64 {
	s := 0.0
	for k := range x {
		s += math.Abs(x[k] - y[k])
	}

	return s
}

func dot(x, y []float64) float64 {
	s := 0.0
	for k := range x {
		s += x[k] * y[k]
	}

	return s
}
