package bigraph_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/bitset"
)

// gridGraph builds a Bigraph from a row-major boolean grid, rows = L,
// columns = R. Kept local to the test package: spec.md treats textual
// grid parsing as an external collaborator, so this is a test fixture,
// not production surface.
func gridGraph(rows [][]bool) *bigraph.Bigraph {
	l := uint32(len(rows))
	r := uint32(0)
	if l > 0 {
		r = uint32(len(rows[0]))
	}
	g := bigraph.New(l, r)
	for x, row := range rows {
		for y, present := range row {
			if present {
				g.Add(bigraph.Edge{X: uint32(x), Y: uint32(y)})
			}
		}
	}
	return g
}

func TestEdgeIndexRoundTrip(t *testing.T) {
	for _, r := range []uint32{1, 2, 3, 5, 8, 17} {
		g := bigraph.New(10, r)
		for x := uint32(0); x < 10; x++ {
			for y := uint32(0); y < r; y++ {
				e := bigraph.Edge{X: x, Y: y}
				got := g.EdgeFromIndex(g.EdgeIndex(e))
				if got != e {
					t.Fatalf("R=%d: round trip (%d,%d) -> %v", r, x, y, got)
				}
			}
		}
	}
}

func TestAddIdempotentAndGet(t *testing.T) {
	g := bigraph.New(3, 3)
	e := bigraph.Edge{X: 1, Y: 2}
	g.Add(e)
	g.Add(e)
	if !g.Get(e) {
		t.Fatalf("expected edge to be present")
	}
	if g.Get(bigraph.Edge{X: 0, Y: 0}) {
		t.Fatalf("did not expect an edge that was never added")
	}
}

func TestAddOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Add to panic on an out-of-range edge")
		}
	}()
	g := bigraph.New(2, 2)
	g.Add(bigraph.Edge{X: 5, Y: 0})
}

func TestMayShareSymmetric(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true},
		{false, true},
		{true, false},
	})
	a, b := bigraph.Edge{X: 0, Y: 0}, bigraph.Edge{X: 1, Y: 1}
	if g.MayShare(a, b) != g.MayShare(b, a) {
		t.Fatalf("MayShare should be symmetric")
	}
	if g.MayShare(a, b) {
		t.Fatalf("(0,0) and (1,1) should not share: (1,0) is absent")
	}
	c := bigraph.Edge{X: 2, Y: 0}
	if !g.MayShare(a, c) {
		t.Fatalf("(0,0) and (2,0) should share: their cross edges are (0,0) and (2,0) themselves")
	}
}

func TestMayAddEmptyCliqueIffEdge(t *testing.T) {
	g := gridGraph([][]bool{{true, false}, {false, true}})
	empty := bigraph.Biclique{}
	if !g.MayAdd(empty, bigraph.Edge{X: 0, Y: 0}) {
		t.Fatalf("MayAdd(empty, e) should hold for e ∈ E")
	}
	if g.MayAdd(empty, bigraph.Edge{X: 0, Y: 1}) {
		t.Fatalf("MayAdd(empty, e) should fail for e ∉ E")
	}
}

func TestEntriesAscendingIndexOrder(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true},
		{false, true},
	})
	entries := g.Entries()
	var indices []uint
	for _, e := range entries {
		indices = append(indices, g.EdgeIndex(e))
	}
	sorted := append([]uint(nil), indices...)
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("Entries() not in ascending index order: %v", indices)
		}
	}
}

func TestLeftRightEntries(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true, false},
		{false, true, true},
	})
	left := g.LeftEntries(0)
	want := []bigraph.Edge{{X: 0, Y: 0}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(left, want) {
		t.Fatalf("LeftEntries(0) = %v; want %v", left, want)
	}
	right := g.RightEntries(1)
	wantRight := []bigraph.Edge{{X: 0, Y: 1}, {X: 1, Y: 1}}
	if !reflect.DeepEqual(right, wantRight) {
		t.Fatalf("RightEntries(1) = %v; want %v", right, wantRight)
	}
}

func TestIsMaximalCompleteGraph(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true},
		{true, true},
	})
	full := bigraph.Biclique{Left: bitset.Collect(0, 1), Right: bitset.Collect(0, 1)}
	if !g.IsMaximal(full) {
		t.Fatalf("the full rectangle of a complete graph should be maximal")
	}
	partial := bigraph.Singleton(0, 0)
	if g.IsMaximal(partial) {
		t.Fatalf("a singleton inside a bigger valid rectangle should not be maximal")
	}
}

func TestIsMaximalEmptyGraph(t *testing.T) {
	g := bigraph.New(2, 2)
	if !g.IsMaximal(bigraph.Biclique{}) {
		t.Fatalf("the empty biclique of an edgeless graph should be maximal")
	}
}

