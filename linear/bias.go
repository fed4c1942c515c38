package linear

import (
	"fmt"
	"math"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

func validateCorpus(plaintexts, ciphertexts []heys.Block) error {
	if len(plaintexts) == 0 {
		return ErrCorpusEmpty
	}
	if len(plaintexts) != len(ciphertexts) {
		return fmt.Errorf("%w: %d plaintexts, %d ciphertexts",
			ErrCorpusMismatch, len(plaintexts), len(ciphertexts))
	}
	return nil
}

func countHolds(plaintexts, ciphertexts []heys.Block, guess *heys.Cipher, relation Relation) int {
	holds := 0
	for i := range plaintexts {
		if relation.Holds(plaintexts[i], ciphertexts[i], guess) {
			holds++
		}
	}
	return holds
}

// EstimateBias evaluates the relation over every plaintext/ciphertext pair
// under the guessed cipher's last round key and returns the absolute
// deviation of the hold fraction from 1/2.
//
// A guess whose relevant key bits are correct reproduces the relation's true
// bias (1/32 for Section34 over the full codebook); a wrong guess averages
// out near zero. It returns ErrCorpusEmpty or ErrCorpusMismatch before any
// evaluation takes place.
func EstimateBias(plaintexts, ciphertexts []heys.Block, guess *heys.Cipher, relation Relation) (float64, error) {
	if err := validateCorpus(plaintexts, ciphertexts); err != nil {
		return 0, err
	}
	holds := countHolds(plaintexts, ciphertexts, guess, relation)
	return math.Abs(float64(holds)/float64(len(plaintexts)) - 0.5), nil
}
