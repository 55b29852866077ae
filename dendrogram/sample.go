package dendrogram

import "math/rand/v2"

// RandomRepresentative returns one item under n. At every merge it flips a
// fair coin and descends into the chosen child, so the choice is uniform per
// branch, not per leaf: a leaf hanging directly off the root of a large tree
// is returned half of the time.
// Complexity: O(depth).
func (n Node[C]) RandomRepresentative(rng RandomSource) C {
	nodes := n.arena()
	s := &nodes[n.id]
	for s.left != NoNode {
		if rng.Bool() {
			s = &nodes[s.left]
		} else {
			s = &nodes[s.right]
		}
	}

	return s.item
}

// RandomRepresentatives cuts n at cutoff and draws one RandomRepresentative
// per resulting cluster, in Cut order.
func (n Node[C]) RandomRepresentatives(rng RandomSource, cutoff float64, isDistance bool) []C {
	clusters := n.Cut(cutoff, isDistance)
	out := make([]C, len(clusters))
	for i, c := range clusters {
		out[i] = c.RandomRepresentative(rng)
	}

	return out
}

// UniformLeaf returns an item drawn uniformly over all leaves under n,
// using the cached subtree sizes to descend without materializing the leaves.
// Complexity: O(depth).
func (n Node[C]) UniformLeaf(rng RandomSource) C {
	nodes := n.arena()
	s := &nodes[n.id]
	k := rng.IntN(0, s.size)
	for s.left != NoNode {
		left := &nodes[s.left]
		if k < left.size {
			s = left
			continue
		}
		k -= left.size
		s = &nodes[s.right]
	}

	return s.item
}

// Rand adapts math/rand/v2 to RandomSource. It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

var _ RandomSource = (*Rand)(nil)

// NewRand returns a deterministic source seeded with seed (PCG generator).
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool { return r.r.Uint64()&1 == 1 }

// IntN returns a uniform integer in [lo, hi). Panics if hi <= lo.
func (r *Rand) IntN(lo, hi int) int { return lo + r.r.IntN(hi-lo) }
