// Package bitset implements a dense, growable set of non-negative
// integers backed by a slice of uint64 words.
//
// Every other package in this module builds its state on top of a
// Set: Bigraph stores its edge relation as one, and Layer stores its
// per-edge, per-biclique constraint data as another. There is no sparse
// representation; the largest instance any caller needs is
// |E|*(k+1), which stays small for the graphs this solver targets.
package bitset
