package heys

import "fmt"

// blockBits is the cipher's block size in bits.
const blockBits = 16

// A Block is a 16-bit unit of cipher data: a plaintext, a ciphertext, a round
// key, or an intermediate state. Blocks are immutable values; every
// transformation returns a new Block.
//
// Bit positions are 1-based and big-endian throughout: bit 1 is the most
// significant bit.
type Block uint16

// NewBlock converts an integer to a Block, returning ErrBlockRange if the
// value does not fit in 16 bits.
func NewBlock(v int) (Block, error) {
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("%w: %d", ErrBlockRange, v)
	}
	return Block(v), nil
}

// ParseBlock parses a big-endian binary-string encoding of a block: exactly
// 16 characters, each '0' or '1', leftmost character first. It returns
// ErrBlockEncoding for input of the wrong length or with other characters.
func ParseBlock(s string) (Block, error) {
	if len(s) != blockBits {
		return 0, fmt.Errorf("%w: need %d binary digits, got %d", ErrBlockEncoding, blockBits, len(s))
	}
	var v uint16
	for i := range blockBits {
		v <<= 1
		switch s[i] {
		case '1':
			v |= 1
		case '0':
		default:
			return 0, fmt.Errorf("%w: %q at offset %d", ErrBlockEncoding, s[i], i)
		}
	}
	return Block(v), nil
}

// XOR returns the bitwise XOR of two blocks. Round keys are mixed into the
// cipher state this way.
func (b Block) XOR(other Block) Block {
	return b ^ other
}

// Bit returns the bit at the given 1-based, big-endian position as 0 or 1.
// It panics if pos is outside [1, 16].
func (b Block) Bit(pos int) int {
	if pos < 1 || pos > blockBits {
		panic("heys: bit position must be between 1 and 16")
	}
	return int(b>>(blockBits-pos)) & 1
}

// Substitute maps each of the block's four nibbles, most significant first,
// through the S-box, preserving nibble positions.
func (b Block) Substitute(s *SBox) Block {
	return b.mapNibbles(&s.forward)
}

// InvertSubstitute undoes Substitute using the S-box's precomputed inverse.
func (b Block) InvertSubstitute(s *SBox) Block {
	return b.mapNibbles(&s.inverse)
}

func (b Block) mapNibbles(table *[16]uint8) Block {
	var out Block
	for shift := 0; shift < blockBits; shift += 4 {
		out |= Block(table[(b>>shift)&0xF]) << shift
	}
	return out
}

// Permute relocates each of the block's sixteen bits to the position given by
// the permutation.
func (b Block) Permute(p *Permutation) Block {
	return b.mapBits(&p.forward)
}

// InvertPermute undoes Permute using the permutation's precomputed inverse.
func (b Block) InvertPermute(p *Permutation) Block {
	return b.mapBits(&p.inverse)
}

func (b Block) mapBits(table *[16]uint8) Block {
	var out Block
	for pos := 1; pos <= blockBits; pos++ {
		if b&(1<<(blockBits-pos)) != 0 {
			out |= 1 << (blockBits - int(table[pos-1]))
		}
	}
	return out
}

// Binary renders the block in the 16-character big-endian binary form used by
// test-vector files, the inverse of ParseBlock.
func (b Block) Binary() string {
	return fmt.Sprintf("%016b", uint16(b))
}

func (b Block) String() string {
	return fmt.Sprintf("0x%04x", uint16(b))
}
