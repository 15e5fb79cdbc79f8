// Package forced computes a large set of pairwise mutually-incompatible
// edges (an independent set of the "may share a biclique" relation).
// Its size lower-bounds any biclique cover of the graph, and each of
// its elements seeds one biclique of the search driver's initial Layer.
//
// Overview:
//
//   - Finding a maximum such set is independent set on the may-share graph
//     over E, which is NP-hard; Elements does not attempt to find a
//     globally maximum set, only a large one, via a deterministic pipeline:
//     guaranteed picks, domination pruning, sparsity ordering, and an
//     anchored branch-and-bound search.
//   - Every pair in the returned slice satisfies !g.MayShare(a, b); the
//     caller gets a ready-to-use seed for the outer search, not a proof
//     of optimality.
//
// When to use:
//
//   - Always, as the first step of a biclique-cover search: the driver
//     calls Elements once per invocation to seed the initial Layer and to
//     pick the starting value of k (the outer search's candidate cover size).
//   - Standalone, if a caller only wants a cheap lower bound on cover size
//     without running the full search.
//
// Key features:
//
//   - Config toggles the two optional refinements (GuaranteedPicks,
//     DominancePruning) independently; DefaultConfig enables both, which
//     is the strongest variant and the one the search driver uses unless
//     overridden via cover.WithGuaranteedPicks/cover.WithDominancePruning.
//   - Deterministic: the same graph and Config always produce the same F,
//     in the same order: the pipeline starts from the edges in ascending
//     index order and makes no random choices. The sparsity sort
//     (sort.Slice) is not stable, so edges with equal share counts do
//     not necessarily keep their index order.
//
// Performance and complexity:
//
//   - optimalForcedElements (GuaranteedPicks): O(E^2), one pass per edge
//     to check row/column solo-ness against every other edge.
//   - dominatedEntries (DominancePruning): O(E^2) to build neighbourhoods,
//     O(E^2) bitset-subset checks to find dominated candidates; each
//     bitset check is O(E/64).
//   - The anchored search itself (recur) is worst-case exponential in the
//     number of surviving candidates, bounded in practice by the
//     cardinality bound (len(*best) >= len(*chosen)+possible.Len()) and
//     the per-anchor improvement bound (bestPossibleImprovement); both
//     refinements above exist specifically to shrink the candidate set
//     the search has to explore.
//   - Space: O(E^2) for the visibility and neighbourhood bitsets.
//
// Error handling:
//
//   - Elements never returns an error and never panics on its own account;
//     it has no configuration to validate beyond Config's two booleans,
//     both of which are meaningful in any combination. An invalid g is a
//     bigraph-package contract violation and panics there: a nil g in the
//     first bigraph method Elements calls on it, an out-of-range edge in
//     bigraph.Add before Elements ever runs — see bigraph's own error
//     handling.
//
// API reference:
//
//	func Elements(g *bigraph.Bigraph, cfg Config) []bigraph.Edge
//
//	  - g:   the graph to seed from; read-only, never mutated.
//	  - cfg: Config{GuaranteedPicks, DominancePruning}; DefaultConfig()
//	         returns both enabled.
//	  - returns: F ⊆ g.Entries(), pairwise mutually-incompatible, in a
//	    deterministic order (guaranteed picks first, then the anchored
//	    search's result).
//
// See also:
//
//   - cover.Search: the driver that calls Elements to seed each k-phase.
//   - bigraph.Bigraph.MayShare: the pairwise-compatibility test F must
//     satisfy.
package forced
