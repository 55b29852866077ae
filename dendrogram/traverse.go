package dendrogram

import "iter"

// DepthFirst visits every node under n in pre-order: a merge is visited
// before its children and the left subtree before the right one.
//
// Steps:
//  1. Push n onto an explicit stack.
//  2. Pop a node and call visit; a non-nil error aborts and is returned as is.
//  3. On a merge push right, then left, so that left is popped first.
//
// Complexity: O(size) time, O(depth) memory.
func (n Node[C]) DepthFirst(visit func(Node[C]) error) error {
	stack := []NodeID{n.id}
	nodes := n.arena()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := visit(Node[C]{tree: n.tree, id: id}); err != nil {
			return err
		}
		if s := &nodes[id]; s.left != NoNode {
			stack = append(stack, s.right, s.left)
		}
	}

	return nil
}

// Nodes returns a lazy pre-order sequence over the subtree rooted at n,
// in the same order as DepthFirst.
func (n Node[C]) Nodes() iter.Seq[Node[C]] {
	return func(yield func(Node[C]) bool) {
		stack := []NodeID{n.id}
		nodes := n.arena()
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(Node[C]{tree: n.tree, id: id}) {
				return
			}
			if s := &nodes[id]; s.left != NoNode {
				stack = append(stack, s.right, s.left)
			}
		}
	}
}

// Leaves returns the items under n from left to right.
// The sequence is lazy and restartable: merge nodes are expanded only as
// the iteration advances, and every range over it starts from n again.
func (n Node[C]) Leaves() iter.Seq[C] {
	return func(yield func(C) bool) {
		stack := []NodeID{n.id}
		nodes := n.arena()
		for len(stack) > 0 {
			s := &nodes[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			if s.left != NoNode {
				stack = append(stack, s.right, s.left)
				continue
			}
			if !yield(s.item) {
				return
			}
		}
	}
}

// LeafSlice collects Leaves into a slice of length Size().
func (n Node[C]) LeafSlice() []C {
	out := make([]C, 0, n.Size())
	for item := range n.Leaves() {
		out = append(out, item)
	}

	return out
}

// Cut descends from n and returns the nodes whose members stay together at
// cutoff. A node is returned without descending iff it is a leaf, or its
// height is <= cutoff (distance) / >= cutoff (similarity). Both boundaries are
// inclusive: two items merged at exactly cutoff are kept together.
//
// The result is a partition of the leaves under n, in traversal order
// (left to right), not sorted by height.
// Complexity: O(size) time, O(depth) memory.
func (n Node[C]) Cut(cutoff float64, isDistance bool) []Node[C] {
	var out []Node[C]
	stack := []NodeID{n.id}
	nodes := n.arena()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := &nodes[id]
		if s.left == NoNode || keeps(s.height, cutoff, isDistance) {
			out = append(out, Node[C]{tree: n.tree, id: id})
			continue
		}
		stack = append(stack, s.right, s.left)
	}

	return out
}

// keeps reports whether a merge at height h survives a cut at cutoff.
func keeps(h, cutoff float64, isDistance bool) bool {
	if isDistance {
		return h <= cutoff
	}

	return h >= cutoff
}

// arena validates n and returns the node slice of its tree.
func (n Node[C]) arena() []node[C] {
	n.slot()

	return n.tree.nodes
}
