// Package linear implements linear cryptanalysis of the Heys SPN cipher: it
// evaluates conjectured XOR relations between plaintext bits and bits of a
// partially decrypted last-round state, estimates their statistical bias over
// a corpus of known plaintext/ciphertext pairs, and ranks last-round key
// guesses by that bias.
//
// The method follows Howard Heys' "A Tutorial on Linear and Differential
// Cryptanalysis" (https://www.engr.mun.ca/~howard/PAPERS/ldc_tutorial.pdf):
// a relation that holds with probability 1/2 + ε lets an attacker distinguish
// the correct guess of the key bits entering the final substitution layer,
// since only the correct guess reproduces the bias |ε| while wrong guesses
// average out to roughly zero.
package linear

import (
	"fmt"
	"strings"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

// Source identifies where a relation term draws its bit from.
type Source int

const (
	// SourcePlaintext selects a bit of the known plaintext.
	SourcePlaintext Source = iota
	// SourceState selects a bit of the partially decrypted last-round state.
	SourceState
)

// Depth is the inversion depth a relation is defined over: how far back from
// the ciphertext the checker walks before reading state bits. Relations
// referencing different pipeline stages must carry their depth explicitly or
// they would be evaluated at the wrong stage.
type Depth int

const (
	// DepthSubstitution undoes the final whitening XOR and one
	// inverse-substitution layer, recovering the state right after the last
	// round's key mixing. Both published Heys relations are defined at this
	// depth, so it is the zero value.
	DepthSubstitution Depth = iota

	// DepthKeyXOR undoes only the final whitening XOR.
	DepthKeyXOR

	// DepthPermutation additionally undoes the bit permutation, for
	// relations expressed over pre-permutation wire positions. The unguessed
	// fourth round key still sits between this state and the true round-3
	// output, but a key XOR only flips the sign of a bias, not its magnitude.
	DepthPermutation
)

// A Term selects one bit of one source.
type Term struct {
	Source Source
	Bit    int
}

// A Relation is an immutable description of a linear approximation: an
// XOR-sum of selected plaintext bits and selected state bits, conjectured to
// equal zero with probability bounded away from 1/2. One evaluator serves
// every relation; relations differ only in data.
type Relation struct {
	name  string
	terms []Term
	depth Depth
}

// NewRelation builds a relation from 1-based plaintext and state bit
// positions. It returns ErrBitRange for a position outside [1, 16] and
// ErrDepth for an unknown depth.
func NewRelation(name string, plaintextBits, stateBits []int, depth Depth) (Relation, error) {
	switch depth {
	case DepthSubstitution, DepthKeyXOR, DepthPermutation:
	default:
		return Relation{}, fmt.Errorf("%w: %d", ErrDepth, depth)
	}

	terms := make([]Term, 0, len(plaintextBits)+len(stateBits))
	for _, pos := range plaintextBits {
		if pos < 1 || pos > 16 {
			return Relation{}, fmt.Errorf("%w: plaintext bit %d", ErrBitRange, pos)
		}
		terms = append(terms, Term{Source: SourcePlaintext, Bit: pos})
	}
	for _, pos := range stateBits {
		if pos < 1 || pos > 16 {
			return Relation{}, fmt.Errorf("%w: state bit %d", ErrBitRange, pos)
		}
		terms = append(terms, Term{Source: SourceState, Bit: pos})
	}

	return Relation{name: name, terms: terms, depth: depth}, nil
}

// Name returns the relation's display name.
func (r Relation) Name() string {
	return r.name
}

// Depth returns the inversion depth the relation is defined over.
func (r Relation) Depth() Depth {
	return r.depth
}

// Terms returns a copy of the relation's terms in evaluation order.
func (r Relation) Terms() []Term {
	return append([]Term(nil), r.terms...)
}

// String renders the relation as an equation, e.g.
// "P[5] + P[7] + P[8] + U[6] + U[8] + U[14] + U[16] = 0".
func (r Relation) String() string {
	var sb strings.Builder
	for i, term := range r.terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch term.Source {
		case SourcePlaintext:
			fmt.Fprintf(&sb, "P[%d]", term.Bit)
		case SourceState:
			fmt.Fprintf(&sb, "U[%d]", term.Bit)
		}
	}
	sb.WriteString(" = 0")
	return sb.String()
}

// PartialDecrypt walks a ciphertext back to the pipeline stage given by
// depth, using only the guessed cipher's last round key.
func PartialDecrypt(ciphertext heys.Block, guess *heys.Cipher, depth Depth) heys.Block {
	state := ciphertext.XOR(guess.LastRoundKey())
	if depth == DepthKeyXOR {
		return state
	}
	state = state.InvertSubstitute(heys.StandardSBox())
	if depth == DepthSubstitution {
		return state
	}
	return state.InvertPermute(heys.StandardPermutation())
}

// Holds reports whether the relation's XOR-sum is zero for the given known
// plaintext/ciphertext pair under the guessed cipher's last round key.
func (r Relation) Holds(plaintext, ciphertext heys.Block, guess *heys.Cipher) bool {
	state := PartialDecrypt(ciphertext, guess, r.depth)
	sum := 0
	for _, term := range r.terms {
		switch term.Source {
		case SourcePlaintext:
			sum ^= plaintext.Bit(term.Bit)
		case SourceState:
			sum ^= state.Bit(term.Bit)
		}
	}
	return sum == 0
}

var (
	section34 = mustRelation(NewRelation(
		"section-3.4", []int{5, 7, 8}, []int{6, 8, 14, 16}, DepthSubstitution))
	allSBoxes = mustRelation(NewRelation(
		"all-sboxes", []int{1, 4, 9, 12}, []int{2, 6, 10, 14}, DepthSubstitution))
)

func mustRelation(r Relation, err error) Relation {
	if err != nil {
		panic(err)
	}
	return r
}

// Section34 returns the relation worked through in section 3.4 of Heys'
// tutorial: P[5] + P[7] + P[8] + U[6] + U[8] + U[14] + U[16] = 0, with a
// theoretical bias of 1/32. It involves the key bits entering S-boxes 2
// and 4 of the last round.
func Section34() Relation {
	return section34
}

// AllSBoxes returns a relation touching bit 2 of every last-round S-box:
// P[1] + P[4] + P[9] + P[12] + U[2] + U[6] + U[10] + U[14] = 0.
func AllSBoxes() Relation {
	return allSBoxes
}
