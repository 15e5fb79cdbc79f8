// Package cover searches for minimum (and minimum-size-exhaustive)
// biclique covers of a bipartite graph: collections of complete
// bipartite subgraphs, which may overlap, whose union is E, using as
// few of them as possible.
//
// Overview:
//
//   - Search drives a depth-first, constraint-propagation
//     branch-and-bound over increasing cover sizes k, starting from
//     the size of forced.Elements(g) and running through every k up to
//     maxSize, whether or not a smaller k already admitted a cover.
//   - Once a k admits a cover, every canonical cover of that same size
//     is enumerated exhaustively via a nested search (the driver never
//     reports only the first cover found at the minimum size).
//   - A containment memo (the *containment type) discards any partial
//     state that is dominated by one already explored at the same k,
//     which is what keeps the branch-and-bound tractable on graphs with
//     a lot of internal symmetry.
//
// When to use:
//
//   - Whenever you need the exact minimum number of complete bipartite
//     rectangles an edge set decomposes into, or every such minimum
//     decomposition, not merely a greedy approximation.
//
// Key features:
//
//   - Functional options tune two optional refinements inherited from
//     package forced (WithGuaranteedPicks, WithDominancePruning); both
//     default on, the strongest variant.
//   - Results are delivered through a Sink callback rather than
//     collected into a slice, so a caller can stop the search early by
//     returning Break from inside the sink.
//   - BicliqueCover canonicalizes its members (sorted, empty bicliques
//     stripped) before comparison or printing, so the same cover found
//     via two different padding sizes compares and prints identically.
//
// Performance and complexity:
//
//   - Worst case exponential in |E|, as the underlying problem is
//     NP-hard; the forced-element lower bound and containment memo are
//     pruning heuristics, not asymptotic guarantees.
//   - Space is dominated by the explicit layer stack, O(|E|) deep
//     (every pushed layer commits at least one more edge than its
//     parent), plus the containment memo, which grows with the number of
//     distinct partial states explored at the current k.
//
// Error handling:
//
//   - Search panics if maxSize < 1 or if g is nil: both are programmer
//     errors, not conditions a caller recovers from at runtime.
//   - There are no sentinel errors in this package; a Bigraph with no
//     valid cover of any size up to maxSize simply yields no calls to
//     the sink.
//
// API reference:
//
//	func Search[B any](
//	    g *bigraph.Bigraph,
//	    maxSize int,
//	    sink Sink[B],
//	    opts ...Option,
//	) Control[B]
package cover
