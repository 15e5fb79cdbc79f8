package forced

import (
	"sort"

	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/bitset"
)

// Config toggles the two optional refinements to the forced-element
// pipeline that spec.md §9 leaves as an implementer's choice. Both
// default to on, which is the strongest (and spec-mandated) variant.
type Config struct {
	// GuaranteedPicks enables the row-solo/column-solo fast path
	// (optimalForcedElements): an edge whose row or column has no
	// other edge is always safe to force, since it can only block
	// other entries along its one remaining free axis.
	GuaranteedPicks bool
	// DominancePruning drops candidate edges whose may-share
	// neighbourhood is a strict superset of another remaining
	// candidate's: such an edge is never a better anchor than the
	// one it dominates, so it is safe to discard before the
	// (expensive) anchored search.
	DominancePruning bool
}

// DefaultConfig returns the spec-mandated strongest variant: both
// refinements enabled.
func DefaultConfig() Config {
	return Config{GuaranteedPicks: true, DominancePruning: true}
}

// Elements computes F ⊆ E such that every distinct pair a, b ∈ F
// satisfies !g.MayShare(a, b). |F| lower-bounds the size of any
// biclique cover of g, since a valid cover must place pairwise
// mutually-incompatible edges into pairwise-distinct bicliques.
func Elements(g *bigraph.Bigraph, cfg Config) []bigraph.Edge {
	mapping := g.Entries()

	var guaranteed []bigraph.Edge
	if cfg.GuaranteedPicks {
		guaranteed = optimalForcedElements(mapping)
	}
	mapping = retainCompatibleWithAll(g, mapping, guaranteed)

	if cfg.DominancePruning {
		dominated := dominatedEntries(g, mapping)
		mapping = retainNotDominated(mapping, dominated)
	}

	all := g.Entries()
	sort.Slice(mapping, func(i, j int) bool {
		return shareCount(g, all, mapping[i]) < shareCount(g, all, mapping[j])
	})

	visibility := make([]bitset.Set, len(mapping))
	for i, e := range mapping {
		var vis bitset.Set
		for j := 0; j < i; j++ {
			if !g.MayShare(e, mapping[j]) {
				vis.Add(uint(j))
			}
		}
		visibility[i] = vis
	}

	var best []bigraph.Edge
	bestPossibleImprovement := []int{0}
	cx := &searchCx{mapping: mapping, visibility: visibility}
	for first := range mapping {
		cx.bestPossibleImprovement = bestPossibleImprovement
		chosen := []bigraph.Edge{mapping[first]}
		possible := visibility[first].Clone()
		recur(cx, &chosen, &best, possible)
		bestPossibleImprovement = append(bestPossibleImprovement, len(best))
	}

	return append(append([]bigraph.Edge(nil), guaranteed...), best...)
}

func shareCount(g *bigraph.Bigraph, all []bigraph.Edge, e bigraph.Edge) int {
	n := 0
	for _, o := range all {
		if g.MayShare(e, o) {
			n++
		}
	}
	return n
}

func retainCompatibleWithAll(g *bigraph.Bigraph, mapping, guaranteed []bigraph.Edge) []bigraph.Edge {
	out := mapping[:0:0]
	for _, e := range mapping {
		ok := true
		for _, o := range guaranteed {
			if g.MayShare(e, o) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

func retainNotDominated(mapping []bigraph.Edge, dominated map[bigraph.Edge]bool) []bigraph.Edge {
	out := mapping[:0:0]
	for _, e := range mapping {
		if !dominated[e] {
			out = append(out, e)
		}
	}
	return out
}

// optimalForcedElements picks every edge whose row or column contains
// no other edge (a "row-solo" or "column-solo" edge), as long as it
// doesn't collide on either axis with an already-picked edge. Such an
// edge can only ever block other entries along its one remaining free
// axis, so including it is never worse than leaving it out.
func optimalForcedElements(mapping []bigraph.Edge) []bigraph.Edge {
	var guaranteed []bigraph.Edge
	for i, e := range mapping {
		xOK, yOK := true, true
		for j, o := range mapping {
			if j == i {
				continue
			}
			if e.X == o.X {
				xOK = false
			}
			if e.Y == o.Y {
				yOK = false
			}
		}

		if !xOK && !yOK {
			continue
		}

		collides := false
		for _, o := range guaranteed {
			if e.X == o.X || e.Y == o.Y {
				collides = true
				break
			}
		}
		if !collides {
			guaranteed = append(guaranteed, e)
		}
	}
	return guaranteed
}

// dominatedEntries reports the set of candidates whose may-share
// neighbourhood (restricted to mapping) is a strict superset of some
// other remaining candidate's: any extension of F through a dominated
// edge is matched or beaten by the same extension through the
// dominating edge, so dominated edges are safe to drop.
func dominatedEntries(g *bigraph.Bigraph, mapping []bigraph.Edge) map[bigraph.Edge]bool {
	n := len(mapping)
	neighborhoods := make([]bitset.Set, n)
	for i, e := range mapping {
		var nb bitset.Set
		for j, o := range mapping {
			if i != j && g.MayShare(e, o) {
				nb.Add(uint(j))
			}
		}
		neighborhoods[i] = nb
	}

	dominated := make(map[bigraph.Edge]bool)
	for i := range mapping {
		for j := range mapping {
			if i == j {
				continue
			}
			if neighborhoods[i].Contains(neighborhoods[j]) && !neighborhoods[i].Equal(neighborhoods[j]) {
				dominated[mapping[i]] = true
				break
			}
		}
	}
	return dominated
}

// searchCx carries the read-only context shared across one anchor's
// recursive search.
type searchCx struct {
	mapping                 []bigraph.Edge
	visibility              []bitset.Set
	bestPossibleImprovement []int
}

// recur implements the anchored branch-and-bound described in spec.md
// §4.3: pick the largest remaining candidate, branch on
// include/exclude, and bound using both the cardinality of the
// remaining candidate set and the best result already recorded for the
// earlier (lower-index) anchors.
func recur(cx *searchCx, chosen *[]bigraph.Edge, best *[]bigraph.Edge, possible bitset.Set) {
	if len(*best) >= len(*chosen)+possible.Len() {
		return
	}

	first, ok := possible.Max()
	if !ok {
		if len(*chosen) > len(*best) {
			*best = append([]bigraph.Edge(nil), (*chosen)...)
		}
		return
	}

	if len(*best) > len(*chosen)+cx.bestPossibleImprovement[first] {
		return
	}

	f := cx.mapping[first]
	*chosen = append(*chosen, f)
	newPossible := possible.Intersection(cx.visibility[first])
	ignoreWithout := newPossible.Equal(possible)
	recur(cx, chosen, best, newPossible)
	*chosen = (*chosen)[:len(*chosen)-1]

	if ignoreWithout {
		return
	}
	if len(*best) >= len(*chosen)+cx.bestPossibleImprovement[first] {
		return
	}

	without := possible.Clone()
	without.Remove(first)
	recur(cx, chosen, best, without)
}
