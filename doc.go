// Package hclust is an agglomerative hierarchical clustering toolkit built
// around the nearest-neighbor-chain (NN-chain) algorithm.
//
// What is in the box?
//
//	A small set of packages that take pairwise data to a dendrogram and back:
//		• matrix      – dense row-major storage, validators, row statistics
//		• measure     – pairwise measures (Euclidean, Manhattan, Cosine,
//		                Pearson, DTW) filled in parallel
//		• cluster     – NN-chain engine with Single, Complete, UPGMA and
//		                WPGMA linkage over distances or similarities
//		• dendrogram  – arena tree, traversal, cut, sampling and the
//		                indentation text format
//		• dtw         – dynamic time warping for series items
//		• cmd/hclust  – command line front end
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0, 1, 4}, {1, 0, 3}, {4, 3, 0}})
//	res, _ := cluster.New[string]().Cluster([]string{"A", "B", "C"}, m, cluster.Distance, cluster.Single)
//	for _, c := range res.Cut(2) {
//		fmt.Println(c.LeafSlice()) // [A B], then [C]
//	}
//	_ = dendrogram.Write(os.Stdout, res.Root, nil)
//
// Output of Write:
//
//	3
//	  1
//	    A
//	    B
//	  C
//
//	go get github.com/katalvlaran/hclust
package hclust
