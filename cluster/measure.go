package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

// Measure turns a list of items into the initial pairwise matrix and tells
// how its values are to be read.
type Measure[C any] interface {
	CreateMatrix(ctx context.Context, items []C) (*matrix.Dense, error)
	Kind() Kind
}

// ClusterMeasure builds the matrix with ms (called exactly once) and
// clusters all items with ms.Kind().
func (e *Engine[C]) ClusterMeasure(ctx context.Context, items []C, ms Measure[C], linkage Linkage) (*Result[C], error) {
	m, err := ms.CreateMatrix(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("cluster: create matrix: %w", err)
	}

	return e.Cluster(items, m, ms.Kind(), linkage)
}

// ClusterIndices clusters the indices 0..n-1 of m; leaf items are the
// indices themselves.
func ClusterIndices(m *matrix.Dense, kind Kind, linkage Linkage, opts ...Option) (*Result[int], error) {
	return New[int](opts...).Cluster(nil, m, kind, linkage)
}
