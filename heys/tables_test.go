package heys

import (
	"errors"
	"testing"
)

func TestNewSBoxRejectsNonBijections(t *testing.T) {
	// 0xE appears twice, 0x4 never.
	dup := [16]uint8{
		0xE, 0xE, 0xD, 0x1, 0x2, 0xF, 0xB, 0x8,
		0x3, 0xA, 0x6, 0xC, 0x5, 0x9, 0x0, 0x7,
	}
	if _, err := NewSBox(dup); !errors.Is(err, ErrNotBijective) {
		t.Errorf("NewSBox(dup) = %v, want ErrNotBijective", err)
	}

	wide := [16]uint8{
		0xE, 0x4, 0xD, 0x1, 0x2, 0xF, 0xB, 0x8,
		0x3, 0xA, 0x6, 0xC, 0x5, 0x9, 0x0, 0x10,
	}
	if _, err := NewSBox(wide); !errors.Is(err, ErrNotBijective) {
		t.Errorf("NewSBox(wide) = %v, want ErrNotBijective", err)
	}
}

func TestNewPermutationRejectsNonBijections(t *testing.T) {
	dup := [16]uint8{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 1}
	if _, err := NewPermutation(dup); !errors.Is(err, ErrNotBijective) {
		t.Errorf("NewPermutation(dup) = %v, want ErrNotBijective", err)
	}

	zero := [16]uint8{0, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}
	if _, err := NewPermutation(zero); !errors.Is(err, ErrNotBijective) {
		t.Errorf("NewPermutation(zero) = %v, want ErrNotBijective", err)
	}

	wide := [16]uint8{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 17}
	if _, err := NewPermutation(wide); !errors.Is(err, ErrNotBijective) {
		t.Errorf("NewPermutation(wide) = %v, want ErrNotBijective", err)
	}
}

func TestSBoxInverseConsistency(t *testing.T) {
	s := StandardSBox()
	for nibble := range uint8(16) {
		if got, want := s.inverse[s.forward[nibble]], nibble; got != want {
			t.Errorf("inverse[forward[%#x]] = %#x, want = %#x", nibble, got, want)
		}
	}
}

func TestPermutationInverseConsistency(t *testing.T) {
	p := StandardPermutation()
	for i := range 16 {
		if got, want := int(p.inverse[p.forward[i]-1]), i+1; got != want {
			t.Errorf("inverse[forward[%d]] = %d, want = %d", i+1, got, want)
		}
	}
}
