package cluster_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/matrix"
)

// Example clusters three items with single linkage and prints the
// dendrogram in its text format.
func Example() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 3},
		{4, 3, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := cluster.New[string]().Cluster([]string{"A", "B", "C"}, m, cluster.Distance, cluster.Single)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := dendrogram.Write(os.Stdout, res.Root, nil); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 3
	//   1
	//     A
	//     B
	//   C
}

// ExampleEngine_AddListener reports every merge together with the pair of
// original indices that produced its height.
func ExampleEngine_AddListener() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 3},
		{4, 3, 0},
	})

	eng := cluster.New[string]()
	eng.AddListener(cluster.ListenerFunc[string](func(n dendrogram.Node[string], i1, i2 int) {
		if n.IsSingleton() {
			fmt.Println("leaf", n.Item())
			return
		}
		fmt.Printf("merge at %g via (%d, %d)\n", n.Height(), i1, i2)
	}))
	if _, err := eng.Cluster([]string{"A", "B", "C"}, m, cluster.Distance, cluster.Single); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// leaf A
	// leaf B
	// leaf C
	// merge at 1 via (0, 1)
	// merge at 3 via (1, 2)
}

// ExampleClusterIndices uses the indices themselves as items.
func ExampleClusterIndices() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 5, 1},
		{5, 0, 6},
		{1, 6, 0},
	})

	res, err := cluster.ClusterIndices(m, cluster.Distance, cluster.Complete)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Root.LeafSlice(), res.Root.Height())
	// Output: [0 2 1] 6
}
