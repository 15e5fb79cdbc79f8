package cover

import (
	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/bitset"
)

// memoEntry records one previously-explored (and since abandoned or
// completed) partial cover, split into the part of it that was already
// maximal (and so must reappear literally, biclique for biclique, in
// any layer this entry is to dominate) and the rest (which only needs
// to be dominated, not reproduced exactly).
type memoEntry struct {
	maximal    []bigraph.Biclique
	tail       []bigraph.Biclique
	emptyCount int
}

func countEmpty(cliques []bigraph.Biclique) int {
	n := 0
	for _, c := range cliques {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

func newMemoEntry(g *bigraph.Bigraph, cliques []bigraph.Biclique) memoEntry {
	data := make([]bigraph.Biclique, len(cliques))
	for i, c := range cliques {
		data[i] = c.Clone()
	}

	maximalCount := 0
	for i := range data {
		if g.IsMaximal(data[i]) {
			data[i], data[maximalCount] = data[maximalCount], data[i]
			maximalCount++
		}
	}

	maximal := append([]bigraph.Biclique(nil), data[:maximalCount]...)
	sortBicliques(maximal)
	tail := append([]bigraph.Biclique(nil), data[maximalCount:]...)

	return memoEntry{
		maximal:    maximal,
		tail:       tail,
		emptyCount: countEmpty(cliques),
	}
}

// containsEntry reports whether data is dominated by e: every member of
// e.maximal must appear literally in data, every member of e.tail must
// be a sub-biclique of some data member, and there must be an
// injective matching from e.tail to the data members that dominate
// them (no data member doing double duty for two different tail
// entries).
func containsEntry(data []bigraph.Biclique, e *memoEntry) bool {
	if e.emptyCount > countEmpty(data) {
		return false
	}

	for _, m := range e.maximal {
		found := false
		for _, d := range data {
			if d.Equal(m) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(e.tail) == 0 {
		return true
	}

	for _, t := range e.tail {
		found := false
		for _, d := range data {
			if d.ContainsClique(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	var pool []bigraph.Biclique
	for _, d := range data {
		dup := false
		for _, m := range e.maximal {
			if d.Equal(m) {
				dup = true
				break
			}
		}
		if !dup {
			pool = append(pool, d)
		}
	}

	candidates := make([]bitset.Set, len(e.tail))
	for j, t := range e.tail {
		var s bitset.Set
		for i, d := range pool {
			if d.ContainsClique(t) {
				s.Add(uint(i))
			}
		}
		candidates[j] = s
	}

	return solveSuperset(candidates)
}

// solveSuperset decides whether a system of distinct representatives
// exists for sets, i.e. an injective choice function assigning each
// sets[j] one of its own members such that no two js share a choice.
// It unit-propagates singleton sets to a fixpoint, then falls back to
// chronological backtracking on whatever remains.
func solveSuperset(sets []bitset.Set) bool {
	remaining := append([]bitset.Set(nil), sets...)

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(remaining); {
			if remaining[i].IsEmpty() {
				return false
			}
			if v, ok := onlyMember(remaining[i]); ok {
				remaining = append(remaining[:i], remaining[i+1:]...)
				for k := range remaining {
					remaining[k].Remove(v)
				}
				changed = true
				continue
			}
			i++
		}
	}

	return solveSupersetBacktrack(remaining)
}

func onlyMember(s bitset.Set) (uint, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	v, _ := s.Min()
	return v, true
}

func solveSupersetBacktrack(remaining []bitset.Set) bool {
	if len(remaining) == 0 {
		return true
	}
	last := remaining[len(remaining)-1]
	rest := remaining[:len(remaining)-1]
	if last.IsEmpty() {
		return false
	}

	found := false
	last.ForEach(func(v uint) bool {
		next := make([]bitset.Set, len(rest))
		for i, s := range rest {
			ns := s.Clone()
			ns.Remove(v)
			next[i] = ns
		}
		if solveSupersetBacktrack(next) {
			found = true
			return false
		}
		return true
	})
	return found
}

// containment is the per-k-phase memo of dominated partial covers: one
// entry per completed (popped) layer, replacing any finer-grained
// entries that were recorded strictly beneath it on the search stack,
// since those are now subsumed.
type containment struct {
	entries []memoEntry
	frames  []frame
}

// frame records the biclique state of a layer at the moment it was
// pushed (startLayer), not its later, more-propagated state: that
// push-time snapshot is strictly more general, and so a better (more
// widely applicable) basis for the memo entry eventually built from it
// than whatever specific state the subtree happens to end up in.
type frame struct {
	entryStart int
	snapshot   []bigraph.Biclique
}

func newContainment(initial []bigraph.Biclique) *containment {
	cm := &containment{}
	cm.reinit(initial)
	return cm
}

// reinit resets the memo for a fresh k-phase, seeding the outermost
// frame from initial (the search's starting layer, before its first
// propagation pass).
func (cm *containment) reinit(initial []bigraph.Biclique) {
	cm.entries = cm.entries[:0]
	cm.frames = []frame{{entryStart: 0, snapshot: cloneBicliques(initial)}}
}

func cloneBicliques(cliques []bigraph.Biclique) []bigraph.Biclique {
	out := make([]bigraph.Biclique, len(cliques))
	for i, c := range cliques {
		out[i] = c.Clone()
	}
	return out
}

// shouldDiscard reports whether data is dominated by any entry
// recorded so far.
func (cm *containment) shouldDiscard(data []bigraph.Biclique) bool {
	for i := range cm.entries {
		if containsEntry(data, &cm.entries[i]) {
			return true
		}
	}
	return false
}

// startLayer pushes a new search-stack frame for data, unless data is
// already dominated, in which case it reports false and pushes
// nothing.
func (cm *containment) startLayer(data []bigraph.Biclique) bool {
	if cm.shouldDiscard(data) {
		return false
	}
	cm.frames = append(cm.frames, frame{entryStart: len(cm.entries), snapshot: cloneBicliques(data)})
	return true
}

// finishLayer pops the current search-stack frame and records its
// push-time snapshot as a memo entry, replacing every entry created
// while that frame (and anything pushed beneath it) was live: they are
// all now dominated by this single summary entry. data is the layer's
// current (fully explored) state, used only to sanity-check that it is
// indeed dominated by the entry just built; production builds skip the
// check entirely.
func (cm *containment) finishLayer(g *bigraph.Bigraph, data []bigraph.Biclique) {
	top := cm.frames[len(cm.frames)-1]
	cm.frames = cm.frames[:len(cm.frames)-1]

	entry := newMemoEntry(g, top.snapshot)
	if checkConsistency && !containsEntry(data, &entry) {
		panic("cover: containment entry does not dominate its own finished layer")
	}
	cm.entries = append(cm.entries[:top.entryStart], entry)
}
