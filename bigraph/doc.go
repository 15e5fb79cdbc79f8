// Package bigraph holds the data model the solver operates on: a
// bipartite graph stored as one packed bitset over L*stride entries,
// and the Biclique value type a cover is built from.
//
// A Bigraph is built once, by repeated Add, and never mutated again
// once search begins (cover.Search takes it as *Bigraph but never
// writes through it).
package bigraph
