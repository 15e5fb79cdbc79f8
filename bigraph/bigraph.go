package bigraph

// MayShare reports whether edges a and b can lie in a common biclique:
// both (a.X, b.Y) and (b.X, a.Y) must also be edges. Symmetric;
// reflexive (MayShare(a, a) is always true for a ∈ E).
func (g *Bigraph) MayShare(a, b Edge) bool {
	return g.Get(Edge{a.X, b.Y}) && g.Get(Edge{b.X, a.Y})
}

// MayAdd reports whether e can be absorbed into clique while preserving
// validity: every x already in clique.Left must connect to e.Y, and
// every y already in clique.Right must connect to e.X. True on an
// empty clique iff e ∈ E.
func (g *Bigraph) MayAdd(clique Biclique, e Edge) bool {
	ok := true
	clique.Left.ForEach(func(x uint) bool {
		if !g.Get(Edge{uint32(x), e.Y}) {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}

	clique.Right.ForEach(func(y uint) bool {
		if !g.Get(Edge{e.X, uint32(y)}) {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}

	return g.Get(e)
}

// columnProfile returns the set of columns y such that every x already
// in left connects to y. With left empty this is every y ∈ [0, R) -
// the natural starting point a maximality scan extends from.
func (g *Bigraph) columnProfile(left []uint32) []uint32 {
	profile := make([]uint32, 0, g.right)
	for y := uint32(0); y < g.right; y++ {
		ok := true
		for _, x := range left {
			if !g.Get(Edge{x, y}) {
				ok = false
				break
			}
		}
		if ok {
			profile = append(profile, y)
		}
	}
	return profile
}

// rowProfile is the symmetric counterpart of columnProfile.
func (g *Bigraph) rowProfile(right []uint32) []uint32 {
	profile := make([]uint32, 0, g.left)
	for x := uint32(0); x < g.left; x++ {
		ok := true
		for _, y := range right {
			if !g.Get(Edge{x, y}) {
				ok = false
				break
			}
		}
		if ok {
			profile = append(profile, x)
		}
	}
	return profile
}

func toU32Slice(items []uint) []uint32 {
	out := make([]uint32, len(items))
	for i, v := range items {
		out[i] = uint32(v)
	}
	return out
}

// IsMaximal reports whether clique can no longer be enlarged on either
// side without losing validity: no unused x connects to every y
// already in Right, and symmetrically no unused y connects to every x
// already in Left. The empty biclique is maximal exactly when E is
// empty.
func (g *Bigraph) IsMaximal(clique Biclique) bool {
	if clique.IsEmpty() {
		return g.edges.IsEmpty()
	}
	left := toU32Slice(clique.Left.Items())
	right := toU32Slice(clique.Right.Items())

	for x := uint32(0); x < g.left; x++ {
		if clique.Left.Test(uint(x)) {
			continue
		}
		if connectsToAll(g, x, right, true) {
			return false
		}
	}

	for y := uint32(0); y < g.right; y++ {
		if clique.Right.Test(uint(y)) {
			continue
		}
		if connectsToAll(g, y, left, false) {
			return false
		}
	}

	return true
}

// connectsToAll reports whether row x (fixedIsRow=true) or column y
// (fixedIsRow=false) connects to every coordinate in profile.
func connectsToAll(g *Bigraph, fixed uint32, profile []uint32, fixedIsRow bool) bool {
	for _, other := range profile {
		var e Edge
		if fixedIsRow {
			e = Edge{fixed, other}
		} else {
			e = Edge{other, fixed}
		}
		if !g.Get(e) {
			return false
		}
	}
	return true
}

// IsMaximalCover reports whether every member biclique of cliques is
// maximal w.r.t. g.
func (g *Bigraph) IsMaximalCover(cliques []Biclique) bool {
	for _, c := range cliques {
		if !g.IsMaximal(c) {
			return false
		}
	}
	return true
}
