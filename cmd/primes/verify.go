package main

import (
	"slices"

	"primes/sieve"
)

// Mismatch is a known-count table entry that the algorithm did not reproduce.
type Mismatch struct {
	Bound    uint32
	Expected int
	Got      int
}

// Verify computes every bound of the known-count table, in ascending order,
// and returns the entries whose prime count differs.
func Verify(known map[uint32]int, compute func(uint32) sieve.PrimeSet) []Mismatch {
	bounds := make([]uint32, 0, len(known))
	for bound := range known {
		bounds = append(bounds, bound)
	}
	slices.Sort(bounds)

	var mismatches []Mismatch
	for _, bound := range bounds {
		if got := compute(bound).Len(); got != known[bound] {
			mismatches = append(mismatches, Mismatch{Bound: bound, Expected: known[bound], Got: got})
		}
	}
	return mismatches
}
