package heys

import (
	"errors"
	"testing"
)

func TestNewBlockRange(t *testing.T) {
	for _, v := range []int{0, 1, 0xABCD, 0xFFFF} {
		b, err := NewBlock(v)
		if err != nil {
			t.Errorf("NewBlock(%d) = %v, want nil error", v, err)
		}
		if got, want := b, Block(v); got != want {
			t.Errorf("NewBlock(%d) = %v, want = %v", v, got, want)
		}
	}

	for _, v := range []int{-1, 0x10000, 1 << 20} {
		if _, err := NewBlock(v); !errors.Is(err, ErrBlockRange) {
			t.Errorf("NewBlock(%d) = %v, want ErrBlockRange", v, err)
		}
	}
}

func TestParseBlock(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Block
	}{
		{"0000000000000000", 0x0000},
		{"1111111111111111", 0xFFFF},
		{"1010101010101010", 0xAAAA},
		{"1000000000000001", 0x8001},
	} {
		got, err := ParseBlock(test.in)
		if err != nil {
			t.Errorf("ParseBlock(%q) = %v, want nil error", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseBlock(%q) = %v, want = %v", test.in, got, test.want)
		}
	}

	for _, in := range []string{
		"",
		"101010101010101",   // too short
		"10101010101010101", // too long
		"1010101010101012",
		"1010 01010101010",
		"0x00000000000000",
	} {
		if _, err := ParseBlock(in); !errors.Is(err, ErrBlockEncoding) {
			t.Errorf("ParseBlock(%q) = %v, want ErrBlockEncoding", in, err)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for v := range 0x10000 {
		b := Block(v)
		got, err := ParseBlock(b.Binary())
		if err != nil {
			t.Fatalf("ParseBlock(%q) = %v, want nil error", b.Binary(), err)
		}
		if got != b {
			t.Fatalf("ParseBlock(%v.Binary()) = %v, want = %v", b, got, b)
		}
	}
}

func TestXOR(t *testing.T) {
	if got, want := Block(0b1111000000000000).XOR(0b0000111111111111), Block(0xFFFF); got != want {
		t.Errorf("XOR = %v, want = %v", got, want)
	}
}

func TestBit(t *testing.T) {
	b := Block(0b1010101010101010)
	for pos := 1; pos <= 16; pos++ {
		if got, want := b.Bit(pos), pos%2; got != want {
			t.Errorf("Bit(%d) = %d, want = %d", pos, got, want)
		}
	}
}

func TestBitPanicsOutOfRange(t *testing.T) {
	for _, pos := range []int{0, 17, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Bit(%d) did not panic", pos)
				}
			}()
			Block(0).Bit(pos)
		}()
	}
}

func TestSubstitute(t *testing.T) {
	if got, want := Block(0xABCD).Substitute(StandardSBox()), Block(0x6C59); got != want {
		t.Errorf("Substitute(0xABCD) = %v, want = %v", got, want)
	}
}

func TestSubstituteInverts(t *testing.T) {
	sbox := StandardSBox()
	for v := range 0x10000 {
		b := Block(v)
		if got := b.Substitute(sbox).InvertSubstitute(sbox); got != b {
			t.Fatalf("InvertSubstitute(Substitute(%v)) = %v, want = %v", b, got, b)
		}
	}
}

func TestPermute(t *testing.T) {
	for _, test := range []struct {
		in, want Block
	}{
		{0b1111000000000000, 0b1000100010001000},
		{0b0000111100000000, 0b0100010001000100},
	} {
		if got := test.in.Permute(StandardPermutation()); got != test.want {
			t.Errorf("Permute(%v) = %v, want = %v", test.in, got, test.want)
		}
	}
}

func TestPermuteInverts(t *testing.T) {
	perm := StandardPermutation()
	for v := range 0x10000 {
		b := Block(v)
		if got := b.Permute(perm).InvertPermute(perm); got != b {
			t.Fatalf("InvertPermute(Permute(%v)) = %v, want = %v", b, got, b)
		}
	}
}

func BenchmarkSubstitute(b *testing.B) {
	sbox := StandardSBox()
	block := Block(0xABCD)
	b.ReportAllocs()
	for b.Loop() {
		block = block.Substitute(sbox)
	}
	_ = block
}

func BenchmarkPermute(b *testing.B) {
	perm := StandardPermutation()
	block := Block(0xABCD)
	b.ReportAllocs()
	for b.Loop() {
		block = block.Permute(perm)
	}
	_ = block
}
