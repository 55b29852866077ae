package cluster_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/matrix"
)

// event is one recorded listener call.
type event struct {
	leaf   bool
	height float64
	i1, i2 int
	size   int
}

// recorder collects events in delivery order.
type recorder[C any] struct {
	events []event
}

func (r *recorder[C]) OnEvent(n dendrogram.Node[C], i1, i2 int) {
	e := event{leaf: n.IsSingleton(), i1: i1, i2: i2, size: n.Size()}
	if !e.leaf {
		e.height = n.Height()
	}
	r.events = append(r.events, e)
}

func (r *recorder[C]) merges() []event {
	var out []event
	for _, e := range r.events {
		if !e.leaf {
			out = append(out, e)
		}
	}

	return out
}

// abcMatrix is the three-item example: d(A,B)=1, d(A,C)=4, d(B,C)=3.
func abcMatrix(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 3},
		{4, 3, 0},
	})
	require.NoError(t, err)

	return m
}

// randomRows returns a symmetric n×n matrix with a zero diagonal and
// off-diagonal values in [1, 101).
func randomRows(seed uint64, n int) [][]float64 {
	r := rand.New(rand.NewPCG(seed, seed+1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 1 + 100*r.Float64()
			rows[i][j], rows[j][i] = v, v
		}
	}

	return rows
}

func toDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func negate(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = -v
		}
	}

	return out
}

// referenceHeights runs the textbook O(n³) agglomeration for Single or
// Complete linkage and returns the merge heights in merge order.
func referenceHeights(d [][]float64, linkage cluster.Linkage, kind cluster.Kind) []float64 {
	clusters := make([][]int, len(d))
	for i := range clusters {
		clusters[i] = []int{i}
	}

	link := func(a, b []int) float64 {
		v := d[a[0]][b[0]]
		for _, p := range a {
			for _, q := range b {
				x := d[p][q]
				if (linkage == cluster.Single && kind.Better(x, v)) ||
					(linkage == cluster.Complete && kind.Better(v, x)) {
					v = x
				}
			}
		}
		return v
	}

	var heights []float64
	for len(clusters) > 1 {
		ba, bb, bv := -1, -1, 0.0
		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				v := link(clusters[a], clusters[b])
				if ba < 0 || kind.Better(v, bv) {
					ba, bb, bv = a, b, v
				}
			}
		}
		heights = append(heights, bv)
		clusters[ba] = append(clusters[ba], clusters[bb]...)
		clusters = append(clusters[:bb], clusters[bb+1:]...)
	}

	return heights
}

// mergeHeights lists the heights of all merge nodes under root.
func mergeHeights[C any](root dendrogram.Node[C]) []float64 {
	var out []float64
	for n := range root.Nodes() {
		if !n.IsSingleton() {
			out = append(out, n.Height())
		}
	}

	return out
}
