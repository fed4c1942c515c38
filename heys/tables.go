package heys

import "fmt"

// An SBox is a bijection over the 16 nibble values, stored as a pair of
// forward and inverse lookup arrays. The inverse is computed once at
// construction, never by search.
//
// SBoxes are immutable after construction and safe for concurrent use.
type SBox struct {
	forward [16]uint8
	inverse [16]uint8
}

// NewSBox builds an S-box from a forward nibble mapping, where forward[i] is
// the output for input nibble i. It returns ErrNotBijective unless the
// mapping is a permutation of {0, ..., 15}.
func NewSBox(forward [16]uint8) (*SBox, error) {
	s := &SBox{forward: forward}
	var seen [16]bool
	for in, out := range forward {
		if out > 0xF {
			return nil, fmt.Errorf("%w: input %#x maps outside nibble range", ErrNotBijective, in)
		}
		if seen[out] {
			return nil, fmt.Errorf("%w: output %#x produced twice", ErrNotBijective, out)
		}
		seen[out] = true
		s.inverse[out] = uint8(in)
	}
	return s, nil
}

// A Permutation is a bijection over the 16 bit positions, stored as forward
// and inverse arrays of 1-based, big-endian positions: forward[i] is the
// destination of the bit at position i+1.
//
// Permutations are immutable after construction and safe for concurrent use.
type Permutation struct {
	forward [16]uint8
	inverse [16]uint8
}

// NewPermutation builds a permutation from a forward position mapping. It
// returns ErrNotBijective unless the mapping is a permutation of {1, ..., 16}.
func NewPermutation(forward [16]uint8) (*Permutation, error) {
	p := &Permutation{forward: forward}
	var seen [16]bool
	for i, to := range forward {
		if to < 1 || to > blockBits {
			return nil, fmt.Errorf("%w: position %d maps outside [1, 16]", ErrNotBijective, i+1)
		}
		if seen[to-1] {
			return nil, fmt.Errorf("%w: position %d produced twice", ErrNotBijective, to)
		}
		seen[to-1] = true
		p.inverse[to-1] = uint8(i + 1)
	}
	return p, nil
}

// The published Heys tables. Built once at package initialization; a failure
// here is a programming error, not a runtime condition.
var (
	standardSBox = mustTable(NewSBox([16]uint8{
		0xE, 0x4, 0xD, 0x1, 0x2, 0xF, 0xB, 0x8,
		0x3, 0xA, 0x6, 0xC, 0x5, 0x9, 0x0, 0x7,
	}))

	standardPermutation = mustTable(NewPermutation([16]uint8{
		1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16,
	}))
)

func mustTable[T any](table T, err error) T {
	if err != nil {
		panic(err)
	}
	return table
}

// StandardSBox returns the S-box from Heys' tutorial paper.
func StandardSBox() *SBox {
	return standardSBox
}

// StandardPermutation returns the bit permutation from Heys' tutorial paper.
// It is an involution, but callers should not rely on that.
func StandardPermutation() *Permutation {
	return standardPermutation
}
