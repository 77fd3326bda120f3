package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEratosthenes(t *testing.T) {
	assert.Empty(t, Eratosthenes(0))
	assert.Empty(t, Eratosthenes(1))
	assert.Equal(t, []uint32{2}, Eratosthenes(2).Sorted())
	assert.Equal(t, primesUpTo100, Eratosthenes(100).Sorted())
	assert.Equal(t, primesUpTo100, Eratosthenes(102).Sorted())
	assert.Equal(t, 9592, Eratosthenes(100_000).Len())
	assert.Equal(t, 78498, Eratosthenes(1_000_000).Len())
}

func TestEratosthenesSquares(t *testing.T) {
	// Squares of primes are the first multiples the sieve marks.
	got := Eratosthenes(121)
	for _, n := range []uint32{4, 9, 25, 49, 121} {
		assert.False(t, got.Contains(n), "%d should be composite", n)
	}
	assert.True(t, got.Contains(113))
}
