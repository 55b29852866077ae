package cluster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/matrix"
)

// Sentinel errors returned by the clustering engine.
var (
	// ErrNilItems indicates that items was nil for a non-integer item type.
	ErrNilItems = errors.New("cluster: items are nil and item type is not int")

	// ErrItemCount indicates that len(items) does not match the matrix order.
	ErrItemCount = errors.New("cluster: item count does not match matrix size")

	// ErrProvenanceUnsupported indicates that provenance was required for a
	// linkage whose values have no single originating pair.
	ErrProvenanceUnsupported = errors.New("cluster: linkage does not support provenance")

	// ErrUnknownKind indicates a Kind outside {Distance, Similarity}.
	ErrUnknownKind = errors.New("cluster: unknown matrix kind")

	// ErrUnknownLinkage indicates a Linkage outside the four supported modes.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")
)

// Kind tells how matrix values are read.
type Kind int

const (
	// Distance: smaller values are closer; the nearest neighbor is the minimum.
	Distance Kind = iota

	// Similarity: larger values are closer; the nearest neighbor is the maximum.
	Similarity
)

// String returns "distance" or "similarity".
func (k Kind) String() string {
	switch k {
	case Distance:
		return "distance"
	case Similarity:
		return "similarity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsDistance reports whether k is Distance.
func (k Kind) IsDistance() bool { return k == Distance }

// Better reports whether a is strictly closer than b under k.
func (k Kind) Better(a, b float64) bool {
	if k == Distance {
		return a < b
	}

	return a > b
}

func (k Kind) valid() bool { return k == Distance || k == Similarity }

// ParseKind parses "distance" or "similarity" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return Distance, nil
	case "similarity":
		return Similarity, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// ProvenanceMode selects whether merge events carry provenance indices.
type ProvenanceMode int

const (
	// ProvenanceAuto tracks provenance when the linkage supports it and at
	// least one listener is registered.
	ProvenanceAuto ProvenanceMode = iota

	// ProvenanceRequired always tracks provenance; UPGMA and WPGMA fail with
	// ErrProvenanceUnsupported.
	ProvenanceRequired

	// ProvenanceOff never tracks provenance; merge events report (-1, -1).
	ProvenanceOff
)

// Listener receives one event per initial leaf, with indices (-1, -1), and
// one event per merge, with the provenance pair or (-1, -1).
// Events are delivered synchronously, in registration order.
type Listener[C any] interface {
	OnEvent(node dendrogram.Node[C], index1, index2 int)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc[C any] func(node dendrogram.Node[C], index1, index2 int)

// OnEvent calls f(node, index1, index2).
func (f ListenerFunc[C]) OnEvent(node dendrogram.Node[C], index1, index2 int) {
	f(node, index1, index2)
}

// Result is the outcome of one clustering call.
//
// Root is invalid when the working set was empty. Matrix is the caller's
// matrix after in-place mutation. ClusteredIndices lists the original indices
// under Root in merge order, starting with the surviving slot.
type Result[C any] struct {
	Root             dendrogram.Node[C]
	Tree             *dendrogram.Tree[C]
	Matrix           *matrix.Dense
	Kind             Kind
	Linkage          Linkage
	ClusteredIndices []int
	Merges           int
}

// Empty reports whether nothing was clustered.
func (r *Result[C]) Empty() bool { return !r.Root.Valid() }

// Cut cuts Root at cutoff, reading heights according to r.Kind.
// An empty result yields nil.
func (r *Result[C]) Cut(cutoff float64) []dendrogram.Node[C] {
	if r.Empty() {
		return nil
	}

	return r.Root.Cut(cutoff, r.Kind.IsDistance())
}
