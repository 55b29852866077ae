package dendrogram_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/dendrogram"
)

func leafSets(nodes []dendrogram.Node[string]) [][]string {
	out := make([][]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.LeafSlice()
	}

	return out
}

func TestDepthFirstOrder(t *testing.T) {
	_, root := buildABC(t)

	var order []string
	err := root.DepthFirst(func(n dendrogram.Node[string]) error {
		order = append(order, n.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Merge(h=3, size=3)",
		"Merge(h=1, size=2)",
		"Leaf(A)",
		"Leaf(B)",
		"Leaf(C)",
	}, order)

	var seq []string
	for n := range root.Nodes() {
		seq = append(seq, n.String())
	}
	assert.Equal(t, order, seq)
}

func TestDepthFirstAbort(t *testing.T) {
	_, root := buildABC(t)
	stop := errors.New("stop")

	visited := 0
	err := root.DepthFirst(func(n dendrogram.Node[string]) error {
		visited++
		if n.IsSingleton() {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestLeavesLazyAndRestartable(t *testing.T) {
	_, root := buildABC(t)

	assert.Equal(t, []string{"A", "B", "C"}, root.LeafSlice())

	// Early break must not disturb a later full iteration.
	for item := range root.Leaves() {
		assert.Equal(t, "A", item)
		break
	}
	assert.Equal(t, []string{"A", "B", "C"}, root.LeafSlice())
}

func TestLeavesDeepChain(t *testing.T) {
	const n = 200000
	root := buildChain(n)

	count, prev := 0, -1
	for item := range root.Leaves() {
		require.Equal(t, prev+1, item)
		prev = item
		count++
	}
	assert.Equal(t, n, count)
	assert.Equal(t, n, root.Size())
}

func TestCutScenario(t *testing.T) {
	_, root := buildABC(t)

	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, leafSets(root.Cut(2, true)))
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}}, leafSets(root.Cut(0.5, true)))
	assert.Equal(t, [][]string{{"A", "B", "C"}}, leafSets(root.Cut(math.Inf(1), true)))
}

func TestCutInclusiveBoundary(t *testing.T) {
	_, root := buildABC(t)

	// Merged at exactly the cutoff: kept together.
	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, leafSets(root.Cut(1, true)))
	assert.Equal(t, [][]string{{"A", "B", "C"}}, leafSets(root.Cut(3, true)))
}

func TestCutSimilarity(t *testing.T) {
	tree := dendrogram.NewTree[string](5)
	ab := tree.Merge(tree.Leaf("A"), tree.Leaf("B"), 0.9)
	root := tree.Merge(ab, tree.Leaf("C"), 0.2)

	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, leafSets(root.Cut(0.9, false)))
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}}, leafSets(root.Cut(0.95, false)))
	assert.Equal(t, [][]string{{"A", "B", "C"}}, leafSets(root.Cut(0.2, false)))
}

func TestCutPartition(t *testing.T) {
	root := buildChain(50)
	for _, cutoff := range []float64{0, 0.5, 1, 10, 25.5, 49, math.Inf(1)} {
		seen := make(map[int]int)
		for _, c := range root.Cut(cutoff, true) {
			for item := range c.Leaves() {
				seen[item]++
			}
		}
		require.Len(t, seen, 50, "cutoff %v", cutoff)
		for item, k := range seen {
			require.Equal(t, 1, k, "item %d at cutoff %v", item, cutoff)
		}
	}
}
