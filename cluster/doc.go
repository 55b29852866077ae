// Package cluster builds dendrograms by agglomerative hierarchical clustering
// using the nearest-neighbor-chain (NN-chain) algorithm.
//
// Input is an n×n pairwise matrix (*matrix.Dense) interpreted either as
// distances (smaller is closer) or as similarities (larger is closer), plus
// one of four linkage criteria:
//
//	Single   – distance: min(d1, d2)        similarity: max(s1, s2)
//	Complete – distance: max(d1, d2)        similarity: min(s1, s2)
//	UPGMA    – w1·v1 + w2·v2, w = cluster-size ratio
//	WPGMA    – 0.5·v1 + 0.5·v2
//
// Algorithm outline:
//
//  1. Seed one leaf per index of the working set (all indices or a subset),
//     firing a leaf event (-1, -1) for each.
//  2. Grow a chain of nearest neighbors, scanning active indices left to
//     right; the first index reaching the extremum wins ties.
//  3. When the chain tip's nearest neighbor is the previous chain element,
//     the pair is a reciprocal nearest neighbor: merge them at their matrix
//     value, update the matrix row/column of the survivor with the linkage
//     rule, retire the other index and fire a merge event.
//  4. If the chain empties, restart it from the lowest active index.
//
// Complexity:
//
//	– Time:  O(n²) for Single, Complete, UPGMA and WPGMA (all reducible).
//	– Space: O(n) bookkeeping on top of the caller's matrix, plus an n×n
//	         origin table when provenance is tracked.
//
// The matrix is mutated in place and returned in Result.Matrix; entries that
// touch retired indices are stale. Items are only read.
//
// Provenance:
//
// For Single and Complete linkage every matrix value was produced by one
// concrete pair of original indices. When provenance is tracked, each merge
// event reports that pair; otherwise it reports (-1, -1). UPGMA and WPGMA
// values are averages with no single origin, so requiring provenance for them
// fails with ErrProvenanceUnsupported.
//
// Errors (sentinel):
//
//	– matrix.ErrNilMatrix        if the matrix is nil.
//	– matrix.ErrNonSquare        if the matrix is not n×n.
//	– ErrItemCount               if len(items) != n.
//	– ErrNilItems                if items is nil and C is not int.
//	– ErrUnknownKind / ErrUnknownLinkage for out-of-range enum values.
//	– ErrProvenanceUnsupported   for ProvenanceRequired with UPGMA/WPGMA.
//
// An empty subset is not an error: the result has an invalid Root and no
// events are fired.
//
// Example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0, 1, 4}, {1, 0, 3}, {4, 3, 0}})
//	res, err := cluster.New[string]().Cluster([]string{"A", "B", "C"}, m, cluster.Distance, cluster.Single)
//	// res.Root = Merge(Merge(A, B, 1), C, 3)
package cluster
