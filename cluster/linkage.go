package cluster

import (
	"fmt"
	"strings"
)

// Linkage is the rule that recomputes the value between a freshly merged
// cluster and every other active cluster.
type Linkage int

const (
	// Single linkage: closest pair (nearest member).
	Single Linkage = iota

	// Complete linkage: farthest pair (farthest member).
	Complete

	// UPGMA: size-weighted average of the two merged rows.
	UPGMA

	// WPGMA: unweighted average of the two merged rows.
	WPGMA
)

var linkageNames = [...]string{
	Single:   "single",
	Complete: "complete",
	UPGMA:    "upgma",
	WPGMA:    "wpgma",
}

// String returns the lower-case linkage name.
func (l Linkage) String() string {
	if !l.valid() {
		return fmt.Sprintf("Linkage(%d)", int(l))
	}

	return linkageNames[l]
}

func (l Linkage) valid() bool { return l >= Single && l <= WPGMA }

// SupportsProvenance reports whether every value produced by l comes from
// exactly one of the two merged rows (true for Single and Complete).
func (l Linkage) SupportsProvenance() bool { return l == Single || l == Complete }

// ParseLinkage parses a linkage name (case-insensitive). "average" is
// accepted for UPGMA.
func ParseLinkage(s string) (Linkage, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "average" {
		return UPGMA, nil
	}
	for l, n := range linkageNames {
		if n == name {
			return Linkage(l), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLinkage)
}

// update combines the values a (survivor row) and b (retired row) toward a
// third cluster. w1 and w2 are the size ratios of the two merged clusters.
// firstWins reports that the result came from a; it is only meaningful for
// Single and Complete, and ties favour a.
func (l Linkage) update(a, b, w1, w2 float64, kind Kind) (v float64, firstWins bool) {
	switch l {
	case Single:
		// Keep the closer value.
		if kind.Better(b, a) {
			return b, false
		}
		return a, true
	case Complete:
		// Keep the farther value.
		if kind.Better(a, b) {
			return b, false
		}
		return a, true
	case UPGMA:
		return w1*a + w2*b, true
	case WPGMA:
		return 0.5*a + 0.5*b, true
	default:
		panic("cluster: update with " + l.String())
	}
}
