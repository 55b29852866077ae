package cluster

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/matrix"
)

// Engine runs NN-chain clustering over items of type C.
//
// An Engine holds only its options and listeners; every call builds fresh
// state and returns it in a Result. Concurrent Cluster calls are safe as long
// as no listener is added meanwhile and the listeners themselves tolerate
// concurrent delivery.
type Engine[C any] struct {
	opts      Options
	listeners []Listener[C]
}

// New returns an Engine configured by opts.
func New[C any](opts ...Option) *Engine[C] {
	return &Engine[C]{opts: gatherOptions(opts...)}
}

// AddListener registers l. Listeners fire in registration order.
func (e *Engine[C]) AddListener(l Listener[C]) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// Cluster clusters every index of m. See ClusterSubset.
func (e *Engine[C]) Cluster(items []C, m *matrix.Dense, kind Kind, linkage Linkage) (*Result[C], error) {
	return e.cluster(items, m, nil, true, kind, linkage)
}

// ClusterSubset clusters only the indices in subset, in the given order
// (the first index seeds the chain). An empty subset yields an empty Result.
//
// Subset indices must be distinct and inside [0, n); they are not validated.
func (e *Engine[C]) ClusterSubset(items []C, m *matrix.Dense, subset []int, kind Kind, linkage Linkage) (*Result[C], error) {
	return e.cluster(items, m, subset, false, kind, linkage)
}

func (e *Engine[C]) cluster(items []C, m *matrix.Dense, subset []int, all bool, kind Kind, linkage Linkage) (*Result[C], error) {
	// Stage 1: validate.
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("cluster: %v: %w", kind, ErrUnknownKind)
	}
	if !linkage.valid() {
		return nil, fmt.Errorf("cluster: %v: %w", linkage, ErrUnknownLinkage)
	}
	n := m.Rows()
	if items == nil {
		ids, ok := identityItems[C](n)
		if !ok {
			return nil, ErrNilItems
		}
		items = ids
	} else if len(items) != n {
		return nil, fmt.Errorf("cluster: %d items for %d×%d matrix: %w", len(items), n, n, ErrItemCount)
	}

	track := false
	switch e.opts.Provenance {
	case ProvenanceRequired:
		if !linkage.SupportsProvenance() {
			return nil, fmt.Errorf("cluster: %v: %w", linkage, ErrProvenanceUnsupported)
		}
		track = true
	case ProvenanceAuto:
		track = linkage.SupportsProvenance() && len(e.listeners) > 0
	}

	if all {
		subset = make([]int, n)
		for i := range subset {
			subset[i] = i
		}
	}

	res := &Result[C]{Matrix: m, Kind: kind, Linkage: linkage}
	if len(subset) == 0 {
		e.opts.Logger.Debug("cluster: empty working set", "n", n)
		return res, nil
	}

	// Stage 2: run NN-chain.
	start := time.Now()
	r := newState(e, items, m, kind, linkage, track)
	rep := r.run(subset)

	res.Root = r.nodes[rep]
	res.Tree = r.tree
	res.ClusteredIndices = r.owned[rep]
	res.Merges = r.merges

	e.opts.Logger.Debug("cluster: done",
		"n", n,
		"clustered", len(subset),
		"kind", kind.String(),
		"linkage", linkage.String(),
		"provenance", track,
		"merges", r.merges,
		"elapsed", time.Since(start),
	)

	return res, nil
}

// identityItems returns 0..n-1 as []C when C is int.
func identityItems[C any](n int) ([]C, bool) {
	var zero C
	if _, ok := any(zero).(int); !ok {
		return nil, false
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	items, ok := any(ids).([]C)

	return items, ok
}

// state is the per-call clustering state. Slots are original indices; a slot
// stays active until it is merged into another one.
type state[C any] struct {
	e       *Engine[C]
	items   []C
	n       int
	d       []float64 // row-major view of the caller's matrix
	kind    Kind
	linkage Linkage

	active *roaring.Bitmap
	sizes  []int
	owned  [][]int
	origin []int // n×n; nil unless provenance is tracked
	nodes  []dendrogram.Node[C]
	tree   *dendrogram.Tree[C]
	merges int
}

func newState[C any](e *Engine[C], items []C, m *matrix.Dense, kind Kind, linkage Linkage, track bool) *state[C] {
	n := m.Rows()
	r := &state[C]{
		e:       e,
		items:   items,
		n:       n,
		d:       m.Flat(),
		kind:    kind,
		linkage: linkage,
		active:  roaring.New(),
		sizes:   make([]int, n),
		owned:   make([][]int, n),
		nodes:   make([]dendrogram.Node[C], n),
	}
	if track {
		r.origin = make([]int, n*n)
		for i := 0; i < n; i++ {
			row := r.origin[i*n : (i+1)*n]
			for j := range row {
				row[j] = i
			}
		}
	}

	return r
}

// run executes the NN-chain loop over ws and returns the representative slot.
func (r *state[C]) run(ws []int) int {
	r.tree = dendrogram.NewTree[C](2*len(ws) - 1)
	for _, idx := range ws {
		r.active.Add(uint32(idx))
		r.sizes[idx] = 1
		r.owned[idx] = []int{idx}
		r.nodes[idx] = r.tree.Leaf(r.items[idx])
		r.fire(r.nodes[idx], -1, -1)
	}

	remaining := len(ws)
	rep := ws[0]
	chain := make([]int, 1, len(ws))
	chain[0] = ws[0]
	for remaining > 1 {
		last := chain[len(chain)-1]
		best := r.nearest(last)
		if len(chain) >= 2 && best == chain[len(chain)-2] {
			i1, i2 := chain[len(chain)-2], last
			chain = chain[:len(chain)-2]
			r.merge(i1, i2)
			remaining--
			rep = i1
			if len(chain) == 0 {
				chain = append(chain, int(r.active.Minimum()))
			}
			continue
		}
		chain = append(chain, best)
	}

	return rep
}

// nearest returns the first active slot other than from holding the extremum
// of row from.
func (r *state[C]) nearest(from int) int {
	row := r.d[from*r.n : (from+1)*r.n]
	best, bestVal := -1, 0.0
	r.active.Iterate(func(x uint32) bool {
		i := int(x)
		if i == from {
			return true
		}
		if best < 0 || r.kind.Better(row[i], bestVal) {
			best, bestVal = i, row[i]
		}
		return true
	})

	return best
}

// merge folds slot i2 into slot i1 at height d[i1][i2].
//
// Steps:
//  1. Capture provenance of the pair before any value changes.
//  2. Retire i2, then rewrite row and column i1 against every other active
//     slot with the linkage rule; the winning side donates its origins.
//  3. Move owned indices, sizes and the merged node into i1; fire the event.
func (r *state[C]) merge(i1, i2 int) {
	n := r.n
	height := r.d[i1*n+i2]

	p1, p2 := -1, -1
	if r.origin != nil {
		p1, p2 = r.originAt(i1, i2), r.originAt(i2, i1)
	}

	s1, s2 := r.sizes[i1], r.sizes[i2]
	w1 := float64(s1) / float64(s1+s2)
	w2 := float64(s2) / float64(s1+s2)

	r.active.Remove(uint32(i2))
	r.active.Iterate(func(x uint32) bool {
		k := int(x)
		if k == i1 {
			return true
		}
		v, firstWins := r.linkage.update(r.d[i1*n+k], r.d[i2*n+k], w1, w2, r.kind)
		r.d[i1*n+k] = v
		r.d[k*n+i1] = v
		if r.origin != nil && !firstWins {
			r.origin[i1*n+k] = r.origin[i2*n+k]
			r.origin[k*n+i1] = r.origin[k*n+i2]
		}
		return true
	})

	r.sizes[i1] = s1 + s2
	r.sizes[i2] = 0
	r.owned[i1] = append(r.owned[i1], r.owned[i2]...)
	r.owned[i2] = nil
	r.nodes[i1] = r.tree.Merge(r.nodes[i1], r.nodes[i2], height)
	r.nodes[i2] = dendrogram.Node[C]{}
	r.merges++

	r.fire(r.nodes[i1], p1, p2)
}

// originAt returns the original index inside slot i responsible for d[i][j].
// Panics when provenance is not tracked.
func (r *state[C]) originAt(i, j int) int {
	if r.origin == nil {
		panic("cluster: provenance queried without tracking (" + r.linkage.String() + ")")
	}

	return r.origin[i*r.n+j]
}

func (r *state[C]) fire(node dendrogram.Node[C], i1, i2 int) {
	for _, l := range r.e.listeners {
		l.OnEvent(node, i1, i2)
	}
}
