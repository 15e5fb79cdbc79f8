package bigraph

import "github.com/katalvlaran/bicover/bitset"

// Biclique is a pair (Left ⊆ L, Right ⊆ R). The solver only ever
// constructs Bicliques that are valid w.r.t. some Bigraph: for every
// x ∈ Left, y ∈ Right, (x, y) ∈ E.
type Biclique struct {
	Left, Right bitset.Set
}

// Singleton returns the smallest valid biclique containing edge (x, y).
func Singleton(x, y uint32) Biclique {
	return Biclique{
		Left:  bitset.Collect(uint(x)),
		Right: bitset.Collect(uint(y)),
	}
}

// IsEmpty reports whether both sides of the biclique are empty.
func (c Biclique) IsEmpty() bool {
	return c.Left.IsEmpty() && c.Right.IsEmpty()
}

// Contains reports whether e lies in the rectangle Left x Right.
func (c Biclique) Contains(e Edge) bool {
	return c.Left.Test(uint(e.X)) && c.Right.Test(uint(e.Y))
}

// ContainsClique reports whether c is a superset of other: other.Left ⊆
// c.Left and other.Right ⊆ c.Right.
func (c Biclique) ContainsClique(other Biclique) bool {
	return c.Left.Contains(other.Left) && c.Right.Contains(other.Right)
}

// Equal reports structural equality of both sides.
func (c Biclique) Equal(other Biclique) bool {
	return c.Left.Equal(other.Left) && c.Right.Equal(other.Right)
}

// Clone returns an independent copy of c.
func (c Biclique) Clone() Biclique {
	return Biclique{Left: c.Left.Clone(), Right: c.Right.Clone()}
}
