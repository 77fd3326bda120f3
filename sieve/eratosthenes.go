package sieve

import "primes/bitset"

// Eratosthenes computes all prime numbers up to limit using the
// Sieve of Eratosthenes algorithm.
func Eratosthenes(limit uint32) PrimeSet {
	primes := make(PrimeSet)
	if limit < 2 {
		return primes
	}

	bound := uint64(limit)
	marked := bitset.New(bound + 1)
	for i := uint64(2); i*i <= bound; i++ {
		if seen, _ := marked.Test(uint32(i)); !seen {
			for j := i * i; j <= bound; j += i {
				_ = marked.Set(uint32(j))
			}
		}
	}

	for i := uint64(2); i <= bound; i++ {
		if seen, _ := marked.Test(uint32(i)); !seen {
			primes[uint32(i)] = struct{}{}
		}
	}

	return primes
}
