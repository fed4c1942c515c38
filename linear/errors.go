package linear

import "errors"

var (
	// ErrBitRange is returned when a relation names a bit position outside [1, 16].
	ErrBitRange = errors.New("linear: bit position outside [1, 16]")

	// ErrDepth is returned when a relation carries an unknown inversion depth.
	ErrDepth = errors.New("linear: unknown inversion depth")

	// ErrCorpusEmpty is returned when bias estimation is given no plaintext/ciphertext pairs.
	ErrCorpusEmpty = errors.New("linear: empty corpus")

	// ErrCorpusMismatch is returned when the plaintext and ciphertext sequences differ in length.
	ErrCorpusMismatch = errors.New("linear: plaintext and ciphertext counts differ")
)
