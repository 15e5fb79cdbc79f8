package bigraph

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/bicover/bitset"
)

// Edge is an unordered-by-construction (x, y) pair with x in [0, L)
// and y in [0, R). Identity is by value.
type Edge struct {
	X, Y uint32
}

// Bigraph is an immutable-after-construction bipartite graph
// G = (L ∪ R, E), E ⊆ L x R. The edge relation is stored as one packed
// bitset indexed by x<<strideShift | y, so index <-> (x, y) conversion
// is a shift/mask pair rather than a division.
type Bigraph struct {
	left, right uint32
	strideShift uint8
	edges       bitset.Set
}

// New constructs an empty bipartite graph with |L| = left and |R| = right.
func New(left, right uint32) *Bigraph {
	return &Bigraph{
		left:        left,
		right:       right,
		strideShift: strideShiftFor(right),
	}
}

// strideShiftFor returns ceil(log2(next_pow2(r))), i.e. the number of
// bits needed to hold a column index once r is rounded up to a power
// of two. strideShiftFor(0) and strideShiftFor(1) are both 0.
func strideShiftFor(r uint32) uint8 {
	if r <= 1 {
		return 0
	}
	return uint8(bits.Len32(r - 1))
}

// Left returns |L|.
func (g *Bigraph) Left() uint32 { return g.left }

// Right returns |R|.
func (g *Bigraph) Right() uint32 { return g.right }

// EdgeIndex maps an edge to its packed bitset index.
func (g *Bigraph) EdgeIndex(e Edge) uint {
	return uint(e.X)<<g.strideShift | uint(e.Y)
}

// EdgeFromIndex is the inverse of EdgeIndex.
func (g *Bigraph) EdgeFromIndex(index uint) Edge {
	mask := uint(1)<<g.strideShift - 1
	return Edge{
		X: uint32(index >> g.strideShift),
		Y: uint32(index & mask),
	}
}

// checkRange panics on an out-of-bounds edge: per the solver's contract,
// edge coordinates out of range are a programmer error, not a
// recoverable condition.
func (g *Bigraph) checkRange(e Edge) {
	if e.X >= g.left || e.Y >= g.right {
		panic(fmt.Sprintf("bigraph: edge (%d, %d) out of range for a %dx%d graph", e.X, e.Y, g.left, g.right))
	}
}

// Add inserts e into E. Duplicate adds are idempotent. Panics if e is
// out of range for this graph's dimensions.
func (g *Bigraph) Add(e Edge) {
	g.checkRange(e)
	g.edges.Add(g.EdgeIndex(e))
}

// Get reports whether e ∈ E. Out-of-range coordinates simply report
// false rather than panicking, since Get is used throughout the solver
// with candidate coordinates drawn from [0, L) x [0, R).
func (g *Bigraph) Get(e Edge) bool {
	if e.X >= g.left || e.Y >= g.right {
		return false
	}
	return g.edges.Test(g.EdgeIndex(e))
}

// Entries returns every edge of E, in ascending index order.
func (g *Bigraph) Entries() []Edge {
	out := make([]Edge, 0, g.edges.Len())
	g.edges.ForEach(func(idx uint) bool {
		out = append(out, g.EdgeFromIndex(idx))
		return true
	})
	return out
}

// LeftEntries returns every edge of E incident to row x, ascending by y.
func (g *Bigraph) LeftEntries(x uint32) []Edge {
	var out []Edge
	for y := uint32(0); y < g.right; y++ {
		if g.Get(Edge{x, y}) {
			out = append(out, Edge{x, y})
		}
	}
	return out
}

// RightEntries returns every edge of E incident to column y, ascending by x.
func (g *Bigraph) RightEntries(y uint32) []Edge {
	var out []Edge
	for x := uint32(0); x < g.left; x++ {
		if g.Get(Edge{x, y}) {
			out = append(out, Edge{x, y})
		}
	}
	return out
}
