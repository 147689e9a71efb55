package registry

import "slices"

// Set is an insertion-ordered set of properties. The zero value is empty
// and ready to use.
type Set struct {
	items []Property
	mask  uint32
}

// NewSet builds a Set from ps, dropping duplicates.
func NewSet(ps ...Property) Set {
	var s Set
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p and reports whether it was not already present.
func (s *Set) Add(p Property) bool {
	if !p.valid() || s.Has(p) {
		return false
	}
	s.items = append(s.items, p)
	s.mask |= 1 << uint(p)
	return true
}

// Has reports whether p is in the set.
func (s Set) Has(p Property) bool {
	return p.valid() && s.mask&(1<<uint(p)) != 0
}

// HasAll reports whether every member of pr is in the set.
func (s Set) HasAll(pr Pair) bool {
	return s.Has(pr[0]) && s.Has(pr[1])
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.items)
}

// At returns the i-th member in first-insertion order. It does not copy,
// which keeps it usable inside the search loop.
func (s Set) At(i int) Property {
	return s.items[i]
}

// Items returns the members in first-insertion order.
func (s Set) Items() []Property {
	return slices.Clone(s.items)
}
