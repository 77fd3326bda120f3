package sieve

import "slices"

// PrimeSet is an unordered set of primes. Once returned by Sieve or
// Eratosthenes it belongs to the caller.
type PrimeSet map[uint32]struct{}

// NewPrimeSet builds a PrimeSet holding the given values.
func NewPrimeSet(values ...uint32) PrimeSet {
	set := make(PrimeSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports whether n is in the set.
func (s PrimeSet) Contains(n uint32) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of elements.
func (s PrimeSet) Len() int {
	return len(s)
}

// Sorted returns the elements in ascending order.
func (s PrimeSet) Sorted() []uint32 {
	values := make([]uint32, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// IsSubsetOf reports whether every element of s is also in other.
func (s PrimeSet) IsSubsetOf(other PrimeSet) bool {
	if len(s) > len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same elements.
func (s PrimeSet) Equal(other PrimeSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}
