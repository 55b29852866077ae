package dendrogram

import (
	"fmt"
	"math"
)

// node is one arena slot. A slot is a leaf when left == NoNode.
type node[C any] struct {
	item    C
	payload any
	height  float64
	size    int
	left    NodeID
	right   NodeID
	parent  NodeID
}

// Tree is an arena owning every node of one dendrogram.
// A Tree is not safe for concurrent mutation; read-only traversal of a
// finished tree from several goroutines is fine.
type Tree[C any] struct {
	nodes []node[C]
}

// NewTree returns an empty arena with room for capacity nodes.
// A dendrogram over n items has exactly 2n-1 nodes.
func NewTree[C any](capacity int) *Tree[C] {
	if capacity < 0 {
		capacity = 0
	}

	return &Tree[C]{nodes: make([]node[C], 0, capacity)}
}

// Len returns the number of nodes allocated in the arena.
func (t *Tree[C]) Len() int { return len(t.nodes) }

// Leaf allocates a singleton node holding item.
// Complexity: O(1) amortized.
func (t *Tree[C]) Leaf(item C) Node[C] {
	t.nodes = append(t.nodes, node[C]{
		item:   item,
		height: math.NaN(),
		size:   1,
		left:   NoNode,
		right:  NoNode,
		parent: NoNode,
	})

	return Node[C]{tree: t, id: NodeID(len(t.nodes) - 1)}
}

// Merge allocates an internal node over left and right at the given height and
// takes ownership of both children.
//
// Panics if either child is invalid, belongs to another tree, already has a
// parent, or if left and right are the same node: any of these would break
// the strict binary-tree invariant.
// Complexity: O(1) amortized.
func (t *Tree[C]) Merge(left, right Node[C], height float64) Node[C] {
	t.own(left)
	t.own(right)
	if left.id == right.id {
		panic(panicSameChildren)
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[C]{
		height: height,
		size:   t.nodes[left.id].size + t.nodes[right.id].size,
		left:   left.id,
		right:  right.id,
		parent: NoNode,
	})
	t.nodes[left.id].parent = id
	t.nodes[right.id].parent = id

	return Node[C]{tree: t, id: id}
}

// Node returns the handle for id. The handle is invalid when id is out of range.
func (t *Tree[C]) Node(id NodeID) Node[C] {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node[C]{}
	}

	return Node[C]{tree: t, id: id}
}

// own validates that n may become a child in t.
func (t *Tree[C]) own(n Node[C]) {
	if !n.Valid() {
		panic(panicInvalidNode)
	}
	if n.tree != t {
		panic(panicForeignNode)
	}
	if t.nodes[n.id].parent != NoNode {
		panic(panicChildOwned)
	}
}

// Node is a handle to one dendrogram node. It is comparable: two handles are
// equal iff they designate the same arena slot, which makes Node usable as a
// map key for per-node payloads. The zero Node is invalid.
type Node[C any] struct {
	tree *Tree[C]
	id   NodeID
}

// Valid reports whether n designates an existing node.
func (n Node[C]) Valid() bool {
	return n.tree != nil && n.id >= 0 && int(n.id) < len(n.tree.nodes)
}

// ID returns the arena index of n.
func (n Node[C]) ID() NodeID { return n.id }

// Tree returns the arena that owns n.
func (n Node[C]) Tree() *Tree[C] { return n.tree }

func (n Node[C]) slot() *node[C] {
	if !n.Valid() {
		panic(panicInvalidNode)
	}

	return &n.tree.nodes[n.id]
}

// IsSingleton reports whether n is a leaf.
func (n Node[C]) IsSingleton() bool { return n.slot().left == NoNode }

// Left returns the left child. Panics on a leaf.
func (n Node[C]) Left() Node[C] {
	s := n.slot()
	if s.left == NoNode {
		panic(panicLeftOfLeaf)
	}

	return Node[C]{tree: n.tree, id: s.left}
}

// Right returns the right child. Panics on a leaf.
func (n Node[C]) Right() Node[C] {
	s := n.slot()
	if s.right == NoNode {
		panic(panicLeftOfLeaf)
	}

	return Node[C]{tree: n.tree, id: s.right}
}

// Height returns the merge height, or NaN for a leaf.
func (n Node[C]) Height() float64 { return n.slot().height }

// Size returns the number of leaves under n (1 for a leaf).
// Sizes are fixed when a merge is created, so this is O(1).
func (n Node[C]) Size() int { return n.slot().size }

// Item returns the item held by a leaf. Panics on a merge node.
func (n Node[C]) Item() C {
	s := n.slot()
	if s.left != NoNode {
		panic(panicItemOfMerge)
	}

	return s.item
}

// Parent returns the merge owning n, or an invalid Node for a root.
func (n Node[C]) Parent() Node[C] {
	p := n.slot().parent
	if p == NoNode {
		return Node[C]{}
	}

	return Node[C]{tree: n.tree, id: p}
}

// Payload returns the opaque user value attached to n, if any.
func (n Node[C]) Payload() any { return n.slot().payload }

// SetPayload attaches an opaque user value to n.
func (n Node[C]) SetPayload(v any) { n.slot().payload = v }

// String renders a one-line summary, e.g. "Leaf(A)" or "Merge(h=3, size=3)".
func (n Node[C]) String() string {
	if !n.Valid() {
		return "Node(invalid)"
	}
	s := n.slot()
	if s.left == NoNode {
		return fmt.Sprintf("Leaf(%v)", s.item)
	}

	return fmt.Sprintf("Merge(h=%g, size=%d)", s.height, s.size)
}
