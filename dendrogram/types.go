// Package dendrogram defines the node identifiers, sentinel errors and the
// random source contract used by the sampling operations.
package dendrogram

import "errors"

// NodeID indexes a node inside its Tree arena.
type NodeID int32

// NoNode marks an absent child or parent link.
const NoNode NodeID = -1

var (
	// ErrEmptyInput is returned by Read when there are no lines to parse.
	ErrEmptyInput = errors.New("dendrogram: empty input")

	// ErrBadHeight indicates that a merge line does not hold a parsable height.
	ErrBadHeight = errors.New("dendrogram: invalid merge height")

	// ErrBadIndent indicates indentation that does not describe a binary tree.
	ErrBadIndent = errors.New("dendrogram: inconsistent indentation")

	// ErrMissingChild indicates a merge line followed by a single child subtree.
	ErrMissingChild = errors.New("dendrogram: merge node is missing a child")
)

// Panic messages for ownership and accessor misuse (programmer errors).
const (
	panicLeftOfLeaf   = "dendrogram: Left/Right called on a leaf"
	panicItemOfMerge  = "dendrogram: Item called on a merge node"
	panicInvalidNode  = "dendrogram: operation on an invalid node"
	panicForeignNode  = "dendrogram: node belongs to a different tree"
	panicChildOwned   = "dendrogram: child already belongs to a merge"
	panicSameChildren = "dendrogram: merge of a node with itself"
)

// RandomSource is the uniform random source consumed by the sampling
// operations. Implementations need not be safe for concurrent use.
type RandomSource interface {
	// Bool returns true or false with equal probability.
	Bool() bool

	// IntN returns a uniformly distributed integer in [lo, hi).
	IntN(lo, hi int) int
}
