package cover_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/cover"
)

// gridGraph builds a Bigraph from a row-major boolean grid. Test
// fixture only; spec treats textual grid parsing as an external
// collaborator, not production surface.
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

// maximalCoverStrings runs Search to exhaustion and collects the
// distinct Format() strings of every emitted cover that is already
// maximal w.r.t. g, mirroring the reference suite's own filter
// (non-maximal emissions are a legitimate byproduct of a biclique
// never being touched after it was forced, not a defect).
func maximalCoverStrings(t *testing.T, g *bigraph.Bigraph, maxSize int) []string {
	t.Helper()
	seen := make(map[string]bool)
	var out []string

	ctrl := cover.Search[struct{}](g, maxSize, func(c cover.BicliqueCover) cover.Control[struct{}] {
		if !g.IsMaximalCover(c.Cliques()) {
			return cover.Continue[struct{}]()
		}
		s := c.Format(g)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
		return cover.Continue[struct{}]()
	})
	if ctrl.ShouldBreak() {
		t.Fatalf("search unexpectedly broke")
	}

	sort.Strings(out)
	return out
}

func assertExact(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %d covers, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("cover mismatch at %d: got %q, want %q\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

func TestScenarioSmall(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true},
		{false, true},
		{true, false},
	})
	got := maximalCoverStrings(t, g, 5)
	assertExact(t, got, []string{
		"101|10 110|01",
		"101|10 110|01 100|11",
	})
}

func TestScenarioSynLEMin(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true, true, true, false},
		{true, true, false, true, true},
		{true, false, true, true, false},
		{true, true, true, true, true},
		{false, true, false, true, true},
	})
	got := maximalCoverStrings(t, g, 4)
	assertExact(t, got, []string{
		"01011|01011 10110|10110 11010|11010",
		"01011|01011 10110|10110 11010|11010 10010|11110",
		"01011|01011 11110|10010 10110|10110 10010|11110",
		"01011|01011 10110|10110 01010|11011 10010|11110",
		"01011|01011 10110|10110 11010|11010 01010|11011",
		"01011|01011 10110|10110 11010|11010 00010|11111",
		"11011|01010 01011|01011 11110|10010 10110|10110",
		"11011|01010 01011|01011 10110|10110 01010|11011",
	})
}

func TestIdentityGraphLowerBound(t *testing.T) {
	const n = 4
	g := bigraph.New(n, n)
	for i := uint32(0); i < n; i++ {
		g.Add(bigraph.Edge{X: i, Y: i})
	}

	var covers []cover.BicliqueCover
	cover.Search[struct{}](g, n, func(c cover.BicliqueCover) cover.Control[struct{}] {
		covers = append(covers, c)
		return cover.Continue[struct{}]()
	})

	if len(covers) != 1 {
		t.Fatalf("identity graph: got %d covers at k=n, want exactly 1", len(covers))
	}
	if covers[0].Size() != n {
		t.Fatalf("identity graph: cover has %d members, want %d singletons", covers[0].Size(), n)
	}
}

func TestCompleteGraphSingleCover(t *testing.T) {
	g := bigraph.New(3, 3)
	for x := uint32(0); x < 3; x++ {
		for y := uint32(0); y < 3; y++ {
			g.Add(bigraph.Edge{X: x, Y: y})
		}
	}

	got := maximalCoverStrings(t, g, 1)
	assertExact(t, got, []string{"111|111"})
}

func TestCancellationStopsAfterFirstCover(t *testing.T) {
	g := gridGraph([][]bool{
		{true, true, true, true, false},
		{true, true, false, true, true},
		{true, false, true, true, false},
		{true, true, true, true, true},
		{false, true, false, true, true},
	})

	calls := 0
	ctrl := cover.Search[int](g, 4, func(c cover.BicliqueCover) cover.Control[int] {
		calls++
		return cover.Break(42)
	})

	if !ctrl.ShouldBreak() {
		t.Fatalf("expected the search to report a break")
	}
	if ctrl.Value() != 42 {
		t.Fatalf("ctrl.Value() = %d, want 42", ctrl.Value())
	}
	if calls != 1 {
		t.Fatalf("sink was called %d times, want exactly 1", calls)
	}
}

func TestRandomGraphInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(6)
		g := bigraph.New(uint32(n), uint32(n))
		for x := uint32(0); x < uint32(n); x++ {
			for y := uint32(0); y < uint32(n); y++ {
				if rng.Float64() < 0.5 {
					g.Add(bigraph.Edge{X: x, Y: y})
				}
			}
		}

		var minSize = -1
		cover.Search[struct{}](g, n, func(c cover.BicliqueCover) cover.Control[struct{}] {
			if !coversAllEdges(g, c) {
				t.Fatalf("trial %d: emitted cover does not cover E: %s", trial, c.Format(g))
			}
			for _, cl := range c.Cliques() {
				if !validBiclique(g, cl) {
					t.Fatalf("trial %d: emitted cover contains an invalid biclique: %s", trial, c.Format(g))
				}
			}
			if minSize == -1 || c.Size() < minSize {
				minSize = c.Size()
			}
			return cover.Continue[struct{}]()
		})

		if minSize != -1 && minSize > n {
			t.Fatalf("trial %d: minimum emitted cover size %d exceeds min(L,R)=%d", trial, minSize, n)
		}
	}
}

func coversAllEdges(g *bigraph.Bigraph, c cover.BicliqueCover) bool {
	for _, e := range g.Entries() {
		found := false
		for _, cl := range c.Cliques() {
			if cl.Contains(e) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func validBiclique(g *bigraph.Bigraph, cl bigraph.Biclique) bool {
	ok := true
	cl.Left.ForEach(func(xi uint) bool {
		cl.Right.ForEach(func(yi uint) bool {
			if !g.Get(bigraph.Edge{X: uint32(xi), Y: uint32(yi)}) {
				ok = false
				return false
			}
			return true
		})
		return ok
	})
	return ok
}
