package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"primes/sieve"
)

func TestVerifyKnownCounts(t *testing.T) {
	for name, compute := range algorithms {
		assert.Empty(t, Verify(defaultKnown, compute), name)
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	known := map[uint32]int{100: 25, 10: 5, 2: 0}

	mismatches := Verify(known, sieve.Sieve)

	assert.Equal(t, []Mismatch{
		{Bound: 2, Expected: 0, Got: 1},
		{Bound: 10, Expected: 5, Got: 4},
	}, mismatches)
}
