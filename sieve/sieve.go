/*
Package sieve enumerates the prime numbers up to a given upper bound.

Sieve classifies every candidate by walking the multiples of each integer
and testing unclassified ones by trial division, remembering composites so
they are never tested twice. Eratosthenes is the textbook sieve and returns
the same set; it is much faster for large bounds.
*/
package sieve

import "primes/bitset"

// IsPrime reports whether num is prime by trial division against every
// integer in [2, num-1], stopping at the first divisor.
func IsPrime(num uint32) bool {
	if num < 2 {
		return false
	}

	for i := uint32(2); i < num; i++ {
		if num%i == 0 {
			return false
		}
	}

	return true
}

/*
Sieve returns the set of all primes less than or equal to upperBound.

For each i in [2, upperBound] it visits the products i*j for j in [0, i-1].
A product above upperBound, or one already known to be composite, is
skipped; any other product is tested with IsPrime and recorded as prime or
composite. Products are computed in 64 bits, so every uint32 bound is
accepted without overflow.
*/
func Sieve(upperBound uint32) PrimeSet {
	if upperBound < 2 {
		return PrimeSet{}
	}
	if upperBound == 2 {
		return NewPrimeSet(2)
	}

	bound := uint64(upperBound)
	primes := make(PrimeSet)
	composites := bitset.New(bound + 1)

	for i := uint64(2); i <= bound; i++ {
		for j := uint64(0); j < i; j++ {
			product := i * j
			if product > bound {
				// i*j only grows with j.
				break
			}

			// product <= upperBound, so it is always inside composites.
			candidate := uint32(product)
			if known, _ := composites.Test(candidate); known {
				continue
			}

			if IsPrime(candidate) {
				primes[candidate] = struct{}{}
			} else {
				_ = composites.Set(candidate)
			}
		}
	}

	return primes
}
