package cover

import (
	"github.com/katalvlaran/bicover/bigraph"
	"github.com/katalvlaran/bicover/forced"
)

// Search enumerates biclique covers of g, searching every size k from
// |F| (F = forced.Elements(g, ...)) up to and including maxSize:
// finding a cover at one k does not end the search, so covers of
// several sizes can be reported. sink is called once per canonical cover, in
// discovery order; returning Break from sink stops the whole search
// immediately and that same Control is returned from Search.
//
// Panics if g is nil or maxSize < 1.
func Search[B any](g *bigraph.Bigraph, maxSize int, sink Sink[B], opts ...Option) Control[B] {
	if g == nil {
		panic("cover: g must not be nil")
	}
	if maxSize < 1 {
		panic("cover: maxSize must be >= 1")
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	forcedEdges := forced.Elements(g, cfg.forced)

	for k := len(forcedEdges); k <= maxSize; k++ {
		initial := newInitialLayer(g, k, forcedEdges)
		if ctrl, brk := runPhase(g, k, initial, sink); brk {
			return ctrl
		}
	}

	return Continue[B]()
}

// runPhase drives one k-sized branch-and-bound search to exhaustion
// (every canonical cover of that exact size reported to sink), using
// an explicit stack in place of recursion so a discovered cover's
// sub-search (satMode) can share the same containment memo as the
// outer search.
func runPhase[B any](g *bigraph.Bigraph, k int, initial *layer, sink Sink[B]) (Control[B], bool) {
	cm := newContainment(initial.bicliques)
	stack := []*layer{initial}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if !top.forcedUpdates(g) || !restrictLayer(g, top) || cm.shouldDiscard(top.bicliques) {
			stack = stack[:len(stack)-1]
			cm.finishLayer(g, top.bicliques)
			continue
		}

		if top.covers(g) {
			stack = stack[:len(stack)-1]
			ctrl, brk := satMode(g, cm, top, sink)
			if brk {
				return ctrl, true
			}
			continue
		}

		accepted := false
		for {
			child, ok := top.guessEntry(g)
			if !ok {
				break
			}
			if cm.startLayer(child.bicliques) {
				stack = append(stack, child)
				accepted = true
				break
			}
		}
		if !accepted {
			stack = stack[:len(stack)-1]
			cm.finishLayer(g, top.bicliques)
		}
	}

	return Continue[B](), false
}

// satMode exhaustively branches from a layer that already covers g, so
// that every canonical cover of this exact size is reported, not just
// the one the outer branch-and-bound happened to find first.
func satMode[B any](g *bigraph.Bigraph, cm *containment, l *layer, sink Sink[B]) (Control[B], bool) {
	for {
		child, ok := l.guessEntry(g)
		if !ok {
			break
		}
		if !restrictLayer(g, child) {
			continue
		}
		if cm.startLayer(child.bicliques) {
			ctrl, brk := satMode(g, cm, child, sink)
			if brk {
				return ctrl, true
			}
		}
	}

	cm.finishLayer(g, l.bicliques)
	ctrl := sink(newBicliqueCover(l.bicliques))
	return ctrl, ctrl.ShouldBreak()
}
