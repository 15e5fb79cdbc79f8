package bitset

import "math/bits"

const wordSize = 64
const log2WordSize = 6

// Set is a dense set of non-negative integers, represented as a slice
// of 64-bit words. The zero value is the empty set and is ready to use.
type Set []uint64

func wordsNeeded(i uint) int {
	return int(i+wordSize) >> log2WordSize
}

func wordIndex(i uint) uint {
	return i >> log2WordSize
}

func bitIndex(i uint) uint {
	return i & (wordSize - 1)
}

// Collect builds a Set containing exactly the given items.
func Collect(items ...uint) Set {
	var s Set
	for _, i := range items {
		s.Add(i)
	}
	return s
}

// Range builds a Set containing every integer in [lo, hi).
func Range(lo, hi uint) Set {
	var s Set
	if hi <= lo {
		return s
	}
	s.grow(hi - 1)
	for i := lo; i < hi; i++ {
		s.Add(i)
	}
	return s
}

func (s *Set) grow(i uint) {
	need := wordsNeeded(i)
	if len(*s) >= need {
		return
	}
	grown := make(Set, need)
	copy(grown, *s)
	*s = grown
}

// Add inserts i into the set, growing the backing storage if needed.
func (s *Set) Add(i uint) {
	s.grow(i)
	(*s)[wordIndex(i)] |= 1 << bitIndex(i)
}

// Remove deletes i from the set. Removing an absent element is a no-op.
func (s *Set) Remove(i uint) {
	w := wordIndex(i)
	if w >= uint(len(*s)) {
		return
	}
	(*s)[w] &^= 1 << bitIndex(i)
}

// Test reports whether i is a member of the set.
func (s Set) Test(i uint) bool {
	w := wordIndex(i)
	if w >= uint(len(s)) {
		return false
	}
	return s[w]&(1<<bitIndex(i)) != 0
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the cardinality of the set (population count).
func (s Set) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	copy(c, s)
	return c
}

// trimmed drops trailing all-zero words, so Equal can compare by value
// regardless of how far either set happened to grow.
func trimmed(s Set) Set {
	n := len(s)
	for n > 0 && s[n-1] == 0 {
		n--
	}
	return s[:n]
}

// Equal reports structural equality: the same integers are members,
// independent of how much backing storage either set allocated.
func (s Set) Equal(other Set) bool {
	a, b := trimmed(s), trimmed(other)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether s is a superset of other (other ⊆ s).
func (s Set) Contains(other Set) bool {
	for i, w := range other {
		if i >= len(s) {
			if w != 0 {
				return false
			}
			continue
		}
		if w&^s[i] != 0 {
			return false
		}
	}
	return true
}

// Intersection returns a new set containing members of both s and other.
func (s Set) Intersection(other Set) Set {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}
	out := make(Set, n)
	for i := 0; i < n; i++ {
		out[i] = s[i] & other[i]
	}
	return out
}

// Difference returns a new set containing members of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for i, w := range s {
		if i < len(other) {
			out[i] = w &^ other[i]
		} else {
			out[i] = w
		}
	}
	return out
}

// Items returns the members of the set in ascending order.
func (s Set) Items() []uint {
	items := make([]uint, 0, s.Len())
	s.ForEach(func(i uint) bool {
		items = append(items, i)
		return true
	})
	return items
}

// ForEach calls f once for every member, in ascending order, stopping
// early if f returns false.
func (s Set) ForEach(f func(uint) bool) {
	for wi, w := range s {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !f(uint(wi)*wordSize + uint(tz)) {
				return
			}
			w &= w - 1
		}
	}
}

// ForEachDesc calls f once for every member, in descending order,
// stopping early if f returns false.
func (s Set) ForEachDesc(f func(uint) bool) {
	for wi := len(s) - 1; wi >= 0; wi-- {
		w := s[wi]
		for w != 0 {
			lead := 63 - bits.LeadingZeros64(w)
			if !f(uint(wi)*wordSize + uint(lead)) {
				return
			}
			w &^= 1 << uint(lead)
		}
	}
}

// Max returns the largest member of the set, if any.
func (s Set) Max() (uint, bool) {
	var found uint
	ok := false
	s.ForEachDesc(func(i uint) bool {
		found, ok = i, true
		return false
	})
	return found, ok
}

// ItemsDesc returns the members of the set in descending order.
func (s Set) ItemsDesc() []uint {
	items := make([]uint, 0, s.Len())
	s.ForEachDesc(func(i uint) bool {
		items = append(items, i)
		return true
	})
	return items
}

// Min returns the smallest member of the set, if any.
func (s Set) Min() (uint, bool) {
	var found uint
	ok := false
	s.ForEach(func(i uint) bool {
		found, ok = i, true
		return false
	})
	return found, ok
}
