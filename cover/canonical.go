package cover

import (
	"sort"
	"strings"

	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/bitset"
)

// compareSetsDesc imposes a total order over two bitset.Sets by
// comparing their members highest-first: the set whose largest member
// is bigger sorts first, ties broken by the next-largest member, and
// so on; a set that is a strict prefix of another (i.e. exhausted
// first) sorts after it.
func compareSetsDesc(a, b bitset.Set) int {
	ai, bi := a.ItemsDesc(), b.ItemsDesc()
	for i := 0; ; i++ {
		switch {
		case i >= len(ai) && i >= len(bi):
			return 0
		case i >= len(ai):
			return 1
		case i >= len(bi):
			return -1
		case ai[i] > bi[i]:
			return -1
		case ai[i] < bi[i]:
			return 1
		}
	}
}

// compareBicliques orders two bicliques by Left first (descending
// lexicographic over its members, largest first), then by Right.
// compareBicliques(a, b) == 0 iff a.Equal(b).
func compareBicliques(a, b bigraph.Biclique) int {
	if c := compareSetsDesc(a.Left, b.Left); c != 0 {
		return c
	}
	return compareSetsDesc(a.Right, b.Right)
}

func sortBicliques(cliques []bigraph.Biclique) {
	sort.Slice(cliques, func(i, j int) bool {
		return compareBicliques(cliques[i], cliques[j]) < 0
	})
}

// BicliqueCover is a discovered, canonicalized cover: padding (empty)
// bicliques are stripped and the remaining members are sorted, so two
// covers found via different k-padding that name the same set of
// non-empty rectangles compare and print identically.
type BicliqueCover struct {
	cliques []bigraph.Biclique
}

func newBicliqueCover(raw []bigraph.Biclique) BicliqueCover {
	out := make([]bigraph.Biclique, 0, len(raw))
	for _, c := range raw {
		if !c.IsEmpty() {
			out = append(out, c.Clone())
		}
	}
	sortBicliques(out)
	return BicliqueCover{cliques: out}
}

// Cliques returns a copy of the cover's non-empty members, in
// canonical order.
func (c BicliqueCover) Cliques() []bigraph.Biclique {
	out := make([]bigraph.Biclique, len(c.cliques))
	for i, cl := range c.cliques {
		out[i] = cl.Clone()
	}
	return out
}

// Size returns the number of non-empty members of the cover.
func (c BicliqueCover) Size() int {
	return len(c.cliques)
}

// Equal reports whether two covers name the same set of rectangles.
func (c BicliqueCover) Equal(other BicliqueCover) bool {
	if len(c.cliques) != len(other.cliques) {
		return false
	}
	for i := range c.cliques {
		if !c.cliques[i].Equal(other.cliques[i]) {
			return false
		}
	}
	return true
}

// Format renders the cover as "<left-bits>|<right-bits> ..." against
// g's dimensions, one space-separated entry per member, in canonical
// order. Intended for tests and debugging, not for round-tripping.
func (c BicliqueCover) Format(g *bigraph.Bigraph) string {
	parts := make([]string, len(c.cliques))
	for i, cl := range c.cliques {
		parts[i] = bitString(cl.Left, g.Left()) + "|" + bitString(cl.Right, g.Right())
	}
	return strings.Join(parts, " ")
}

func bitString(s bitset.Set, n uint32) string {
	b := make([]byte, n)
	for i := uint32(0); i < n; i++ {
		if s.Test(uint(i)) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
