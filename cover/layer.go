package cover

import (
	"fmt"

	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/bitset"
)

// checkConsistency gates the (expensive) layer-state assertion in
// layer.checkConsistent. It is a compile-time constant so the Go
// compiler dead-code-eliminates the check entirely in ordinary builds;
// flip it to true locally when debugging a propagation bug.
const checkConsistency = false

// layer is one node of the search driver's explicit stack: a candidate
// partial assignment of k bicliques, together with the three-valued
// constraint data that records, for every (edge, biclique) pair,
// whether the edge is already committed to that biclique, may still be
// added to it, or has been excluded from it.
//
// data is indexed by dataIndex(g, k, e) + 1 + c for "may add edge e to
// biclique c", and by dataIndex(g, k, e) + 0 for "edge e is already
// committed to some biclique" (which biclique is recovered by scanning
// bicliques, not stored redundantly).
type layer struct {
	bicliques []bigraph.Biclique
	data      bitset.Set
	changed   bitset.Set
}

// dataIndex returns the base offset into a layer's data set for edge e,
// given a layer of k bicliques: slot base+0 is "committed", slots
// base+1..base+k are "may add to biclique c".
func dataIndex(g *bigraph.Bigraph, k int, e bigraph.Edge) uint {
	return g.EdgeIndex(e) * uint(k+1)
}

func inBicliqueSlot(base uint) uint {
	return base
}

func mayAddSlot(base uint, c int) uint {
	return base + 1 + uint(c)
}

// newInitialLayer builds the starting point of one k-phase: one
// singleton biclique per forced edge, padded with empty bicliques up
// to k, and the full three-valued data set computed from scratch.
func newInitialLayer(g *bigraph.Bigraph, k int, forcedEdges []bigraph.Edge) *layer {
	if len(forcedEdges) > k {
		panic(fmt.Sprintf("cover: %d forced edges do not fit in a layer of size %d", len(forcedEdges), k))
	}

	bicliques := make([]bigraph.Biclique, k)
	for i, e := range forcedEdges {
		bicliques[i] = bigraph.Singleton(e.X, e.Y)
	}

	l := &layer{
		bicliques: bicliques,
		changed:   bitset.Range(0, uint(k)),
	}

	for _, e := range g.Entries() {
		base := dataIndex(g, k, e)
		for c := 0; c < k; c++ {
			if bicliques[c].Contains(e) {
				l.data.Add(inBicliqueSlot(base))
			} else if g.MayAdd(bicliques[c], e) {
				l.data.Add(mayAddSlot(base, c))
			}
		}
	}

	return l
}

func (l *layer) clone() *layer {
	bicliques := make([]bigraph.Biclique, len(l.bicliques))
	for i, c := range l.bicliques {
		bicliques[i] = c.Clone()
	}
	return &layer{
		bicliques: bicliques,
		data:      l.data.Clone(),
		changed:   l.changed.Clone(),
	}
}

// covers reports whether every edge of g is already committed to some
// biclique of l.
func (l *layer) covers(g *bigraph.Bigraph) bool {
	k := len(l.bicliques)
	for _, e := range g.Entries() {
		if !l.data.Test(inBicliqueSlot(dataIndex(g, k, e))) {
			return false
		}
	}
	return true
}

// addLeft absorbs row x into biclique c: every edge (x, y) for y
// already in the biclique's Right becomes committed, and any column y
// that x cannot reach is excluded as a future candidate for c, since
// once x sits in c's Left every member of c's Right must connect to x.
func (l *layer) addLeft(g *bigraph.Bigraph, c int, x uint32) {
	k := len(l.bicliques)
	clique := l.bicliques[c]

	clique.Right.ForEach(func(yi uint) bool {
		y := uint32(yi)
		base := dataIndex(g, k, bigraph.Edge{X: x, Y: y})
		l.data.Add(inBicliqueSlot(base))
		l.data.Remove(mayAddSlot(base, c))
		return true
	})

outer:
	for y := uint32(0); y < g.Right(); y++ {
		if g.Get(bigraph.Edge{X: x, Y: y}) {
			continue
		}
		ok := true
		clique.Left.ForEach(func(xi uint) bool {
			if !g.Get(bigraph.Edge{X: uint32(xi), Y: y}) {
				ok = false
				return false
			}
			return true
		})
		if !ok {
			continue outer
		}
		for x2 := uint32(0); x2 < g.Left(); x2++ {
			if g.Get(bigraph.Edge{X: x2, Y: y}) {
				base := dataIndex(g, k, bigraph.Edge{X: x2, Y: y})
				l.data.Remove(mayAddSlot(base, c))
			}
		}
	}

	l.bicliques[c].Left.Add(uint(x))
	l.changed.Add(uint(c))
	l.checkConsistent(g)
}

// addRight is the column-symmetric counterpart of addLeft.
func (l *layer) addRight(g *bigraph.Bigraph, c int, y uint32) {
	k := len(l.bicliques)
	clique := l.bicliques[c]

	clique.Left.ForEach(func(xi uint) bool {
		x := uint32(xi)
		base := dataIndex(g, k, bigraph.Edge{X: x, Y: y})
		l.data.Add(inBicliqueSlot(base))
		l.data.Remove(mayAddSlot(base, c))
		return true
	})

outer:
	for x := uint32(0); x < g.Left(); x++ {
		if g.Get(bigraph.Edge{X: x, Y: y}) {
			continue
		}
		ok := true
		clique.Right.ForEach(func(yi uint) bool {
			if !g.Get(bigraph.Edge{X: x, Y: uint32(yi)}) {
				ok = false
				return false
			}
			return true
		})
		if !ok {
			continue outer
		}
		for y2 := uint32(0); y2 < g.Right(); y2++ {
			if g.Get(bigraph.Edge{X: x, Y: y2}) {
				base := dataIndex(g, k, bigraph.Edge{X: x, Y: y2})
				l.data.Remove(mayAddSlot(base, c))
			}
		}
	}

	l.bicliques[c].Right.Add(uint(y))
	l.changed.Add(uint(c))
	l.checkConsistent(g)
}

// addEntry commits edge e to biclique c, extending whichever of its
// endpoints biclique c doesn't already contain.
func (l *layer) addEntry(g *bigraph.Bigraph, c int, e bigraph.Edge) {
	if !l.bicliques[c].Left.Test(uint(e.X)) {
		l.addLeft(g, c, e.X)
	}
	if !l.bicliques[c].Right.Test(uint(e.Y)) {
		l.addRight(g, c, e.Y)
	}
}

// forcedUpdates repeatedly scans for edges with exactly one remaining
// candidate biclique and commits them, until a fixpoint. It reports
// false the instant an edge is found with zero candidates: the layer
// is unsatisfiable and must be discarded by the caller.
func (l *layer) forcedUpdates(g *bigraph.Bigraph) bool {
	k := len(l.bicliques)
	changed := true
	for changed {
		changed = false
	entries:
		for _, e := range g.Entries() {
			base := dataIndex(g, k, e)
			if l.data.Test(inBicliqueSlot(base)) {
				continue
			}

			only := -1
			for c := 0; c < k; c++ {
				if l.data.Test(mayAddSlot(base, c)) {
					if only == -1 {
						only = c
					} else {
						continue entries
					}
				}
			}
			if only == -1 {
				return false
			}

			changed = true
			l.addEntry(g, only, e)
		}
	}
	return true
}

// guessEntry tries, in order of increasing branching factor, to find an
// edge with few remaining candidate bicliques and split on it: it
// returns a clone of l with one candidate committed, after recording on
// l itself that the branch just taken must not be revisited. Symmetry
// breaking rejects any candidate that would duplicate another biclique
// already present in the clone. Only uncovered edges with fewer than k
// remaining candidates are split on; returns (nil, false) when none of
// them produces a usable branch.
func (l *layer) guessEntry(g *bigraph.Bigraph) (*layer, bool) {
	k := len(l.bicliques)

	for maxChoices := 2; maxChoices < k; maxChoices++ {
		for _, e := range g.Entries() {
			base := dataIndex(g, k, e)
			if l.data.Test(inBicliqueSlot(base)) {
				continue
			}

			numChoices := 0
			for c := 0; c < k; c++ {
				if l.data.Test(mayAddSlot(base, c)) {
					numChoices++
				}
			}
			if numChoices == 0 || numChoices > maxChoices {
				continue
			}

		candidates:
			for c := 0; c < k; c++ {
				if !l.data.Test(mayAddSlot(base, c)) {
					continue
				}

				next := l.clone()
				next.addEntry(g, c, e)

				for i := range next.bicliques {
					if i != c && next.bicliques[c].Equal(next.bicliques[i]) {
						continue candidates
					}
				}

				prev := l.bicliques[c]
				switch {
				case prev.Left.Test(uint(e.X)):
					for x := uint32(0); x < g.Left(); x++ {
						idx := dataIndex(g, k, bigraph.Edge{X: x, Y: e.Y})
						l.data.Remove(mayAddSlot(idx, c))
					}
				case prev.Right.Test(uint(e.Y)):
					for y := uint32(0); y < g.Right(); y++ {
						idx := dataIndex(g, k, bigraph.Edge{X: e.X, Y: y})
						l.data.Remove(mayAddSlot(idx, c))
					}
				case prev.IsEmpty():
					l.data.Remove(mayAddSlot(base, c))
				default:
					continue candidates
				}

				return next, true
			}
		}
	}

	return nil, false
}

// leftMaximal extends biclique c's Left with every row that connects to
// every column already reachable from every row currently in Left
// (the largest row set consistent with c's current Right, computed
// once up front).
func leftMaximal(g *bigraph.Bigraph, l *layer, c int) {
	var maximal bitset.Set
	for y := uint32(0); y < g.Right(); y++ {
		maximal.Add(uint(y))
	}
	l.bicliques[c].Left.ForEach(func(xi uint) bool {
		x := uint32(xi)
		for y := uint32(0); y < g.Right(); y++ {
			if !g.Get(bigraph.Edge{X: x, Y: y}) {
				maximal.Remove(uint(y))
			}
		}
		return true
	})

	for x := uint32(0); x < g.Left(); x++ {
		ok := true
		maximal.ForEach(func(yi uint) bool {
			if !g.Get(bigraph.Edge{X: x, Y: uint32(yi)}) {
				ok = false
				return false
			}
			return true
		})
		if ok {
			l.addLeft(g, c, x)
		}
	}
}

// rightMaximal is the column-symmetric counterpart of leftMaximal.
func rightMaximal(g *bigraph.Bigraph, l *layer, c int) {
	var maximal bitset.Set
	for x := uint32(0); x < g.Left(); x++ {
		maximal.Add(uint(x))
	}
	l.bicliques[c].Right.ForEach(func(yi uint) bool {
		y := uint32(yi)
		for x := uint32(0); x < g.Left(); x++ {
			if !g.Get(bigraph.Edge{X: x, Y: y}) {
				maximal.Remove(uint(x))
			}
		}
		return true
	})

	for y := uint32(0); y < g.Right(); y++ {
		ok := true
		maximal.ForEach(func(xi uint) bool {
			if !g.Get(bigraph.Edge{X: uint32(xi), Y: y}) {
				ok = false
				return false
			}
			return true
		})
		if ok {
			l.addRight(g, c, y)
		}
	}
}

// restrictLayer extends every biclique touched since the last call
// (l.changed) to its maximal form, then re-runs forcedUpdates. It
// reports false iff the resulting forced updates prove the layer
// unsatisfiable.
func restrictLayer(g *bigraph.Bigraph, l *layer) bool {
	pending := l.changed
	l.changed = bitset.Set{}

	pending.ForEach(func(ci uint) bool {
		c := int(ci)
		rightMaximal(g, l, c)
		leftMaximal(g, l, c)
		return true
	})

	// Any further extension triggered by the maximality passes above
	// re-marks l.changed; that re-marking only matters to the *next*
	// restrictLayer call (on whichever layer this one becomes, after
	// guessEntry clones it), so it is dropped here.
	l.changed = bitset.Set{}

	return l.forcedUpdates(g)
}

// checkConsistent checks, for every edge and every biclique that
// contains it, that the edge's committed slot is set and its may-add
// slot for that biclique is clear, and panics otherwise. It does not
// check the may-add slots of bicliques that do not contain the edge,
// nor that a set committed slot has a containing biclique. Gated behind the
// checkConsistency constant; elided entirely when that constant is
// false.
func (l *layer) checkConsistent(g *bigraph.Bigraph) {
	if !checkConsistency {
		return
	}
	k := len(l.bicliques)
	for _, e := range g.Entries() {
		base := dataIndex(g, k, e)
		for c := 0; c < k; c++ {
			committed := l.bicliques[c].Contains(e)
			if committed != l.data.Test(inBicliqueSlot(base)) && committed {
				panic(fmt.Sprintf("cover: layer inconsistent: %v committed to %d but slot not set", e, c))
			}
			if committed && l.data.Test(mayAddSlot(base, c)) {
				panic(fmt.Sprintf("cover: layer inconsistent: %v committed to %d but still marked may-add", e, c))
			}
		}
	}
}
