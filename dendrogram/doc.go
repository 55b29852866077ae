// Package dendrogram implements the binary merge tree produced by
// agglomerative hierarchical clustering, together with the operations a caller
// needs once clustering is done.
//
// What:
//
//   - Tree[C]: an arena that owns every node of one dendrogram. Nodes are
//     addressed by NodeID; a merge exclusively owns its two children.
//   - Node[C]: a small comparable handle {tree, id}. Equality and map keys are
//     reference identity, never structural, so listener callbacks and
//     node→payload maps behave the same for two identical-looking subtrees.
//   - Traversal: DepthFirst (pre-order, left before right), Nodes and Leaves
//     (lazy iter.Seq, restartable, no eager flattening).
//   - Cut: select the nodes that stay together at a height threshold.
//     The boundary is inclusive on both distance and similarity sides.
//   - Sampling: RandomRepresentative flips a fair coin at every merge;
//     UniformLeaf picks a leaf uniformly by size.
//   - Text format: Write / Read / ReadFrom, an indentation-based format with
//     one node per line and merge heights printed with 6 significant digits.
//
// Text format:
//
//	3
//	  1
//	    A
//	    B
//	  C
//
// is Merge(Merge(A, B, 1), C, 3). Each child is indented one level (two
// spaces) deeper than its parent. Leaves may carry an annotation written as
// "item (annotation)"; Read hands the whole leaf text, annotation included,
// to the caller's parse function.
//
// Complexity:
//
//   - Leaf/Merge/Size/Height: O(1)
//   - DepthFirst, Leaves, Cut, Write, Read: O(N) time, O(depth) stack memory
//
// All traversals are iterative with explicit stacks, so degenerate (chain
// shaped) trees over very large item counts never exhaust the goroutine stack.
//
// Errors:
//
//   - ErrEmptyInput    text input had no lines
//   - ErrBadHeight     a merge line did not parse as a float
//   - ErrBadIndent     indentation is inconsistent with the tree structure
//   - ErrMissingChild  a merge line has only one child subtree
package dendrogram
