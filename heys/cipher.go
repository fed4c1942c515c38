package heys

import "fmt"

const (
	// rounds is the number of substitution rounds.
	rounds = 4
	// numRoundKeys is rounds plus one whitening key.
	numRoundKeys = rounds + 1
)

// A Cipher is a Heys SPN instance with a fixed vector of five round keys. It
// is read-only after construction and safe for concurrent use.
type Cipher struct {
	roundKeys [numRoundKeys]Block
}

// NewCipher builds a cipher from exactly five round keys. It returns
// ErrRoundKeyCount for any other number of keys and ErrBlockRange for a key
// outside [0, 65535].
func NewCipher(roundKeys []int) (*Cipher, error) {
	if len(roundKeys) != numRoundKeys {
		return nil, fmt.Errorf("%w: got %d", ErrRoundKeyCount, len(roundKeys))
	}
	var c Cipher
	for i, k := range roundKeys {
		b, err := NewBlock(k)
		if err != nil {
			return nil, fmt.Errorf("round key %d: %w", i+1, err)
		}
		c.roundKeys[i] = b
	}
	return &c, nil
}

// Encrypt runs the four-round SPN over a plaintext block. Each round XORs a
// round key and substitutes the nibbles; rounds 1-3 then permute the bits.
// The last round's substituted output is instead whitened with the fifth key.
func (c *Cipher) Encrypt(plaintext Block) Block {
	state := plaintext
	for round := range rounds {
		state = state.XOR(c.roundKeys[round]).Substitute(standardSBox)
		if round < rounds-1 {
			state = state.Permute(standardPermutation)
		}
	}
	return state.XOR(c.roundKeys[rounds])
}

// Decrypt mirrors Encrypt exactly, undoing each layer in reverse order.
func (c *Cipher) Decrypt(ciphertext Block) Block {
	state := ciphertext.XOR(c.roundKeys[rounds]).InvertSubstitute(standardSBox)
	for round := rounds - 1; round >= 1; round-- {
		state = state.XOR(c.roundKeys[round]).InvertPermute(standardPermutation).InvertSubstitute(standardSBox)
	}
	return state.XOR(c.roundKeys[0])
}

// RoundKey returns the nth round key, 1-based. It panics if n is outside
// [1, 5].
func (c *Cipher) RoundKey(n int) Block {
	if n < 1 || n > numRoundKeys {
		panic("heys: round key index must be between 1 and 5")
	}
	return c.roundKeys[n-1]
}

// LastRoundKey returns the fifth round key, the whitening key a last-round
// attack guesses at.
func (c *Cipher) LastRoundKey() Block {
	return c.roundKeys[numRoundKeys-1]
}
