/*
Package bitset provides a fixed-size bitset indexed by uint32 values.

A bitset stores one bit per value and is useful for representing dense sets of
small integers, such as the composites found while sieving a bounded range.
*/
package bitset

import (
	"fmt"
	"math/bits"
)

// BitSet represents a bitset using a slice of uint64 words.
type BitSet struct {
	bits []uint64
	size uint64
}

// New creates a BitSet holding positions [0, size).
// The size is a uint64 so that every uint32 position can be addressed.
func New(size uint64) *BitSet {
	return &BitSet{
		bits: make([]uint64, (size+63)/64),
		size: size,
	}
}

// Len returns the number of addressable positions.
func (bs *BitSet) Len() uint64 {
	return bs.size
}

func (bs *BitSet) locate(pos uint32) (int, uint, error) {
	if uint64(pos) >= bs.size {
		return 0, 0, fmt.Errorf("invalid position: %d (size %d)", pos, bs.size)
	}
	return int(pos / 64), uint(pos % 64), nil
}

// Set sets the bit at the specified position to 1.
func (bs *BitSet) Set(pos uint32) error {
	index, offset, err := bs.locate(pos)
	if err != nil {
		return err
	}
	bs.bits[index] |= 1 << offset
	return nil
}

// Clear resets the bit at the specified position to 0.
func (bs *BitSet) Clear(pos uint32) error {
	index, offset, err := bs.locate(pos)
	if err != nil {
		return err
	}
	bs.bits[index] &^= 1 << offset
	return nil
}

// Test returns true if the bit at the specified position is set to 1.
func (bs *BitSet) Test(pos uint32) (bool, error) {
	index, offset, err := bs.locate(pos)
	if err != nil {
		return false, err
	}
	return (bs.bits[index] & (1 << offset)) != 0, nil
}

// Count returns the number of bits set to 1.
func (bs *BitSet) Count() int {
	count := 0
	for _, word := range bs.bits {
		count += bits.OnesCount64(word)
	}
	return count
}
