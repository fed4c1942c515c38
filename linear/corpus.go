package linear

import "github.com/xuganyu96/linear-cryptanalysis/heys"

// GenerateCorpus encrypts the full codebook under the given cipher, returning
// all 65536 plaintexts in ascending order alongside their ciphertexts. The
// 16-bit block space is small enough that exhaustive known-plaintext corpora
// are the norm rather than the exception.
func GenerateCorpus(cipher *heys.Cipher) (plaintexts, ciphertexts []heys.Block) {
	plaintexts = make([]heys.Block, 1<<16)
	ciphertexts = make([]heys.Block, 1<<16)
	for v := range 1 << 16 {
		plaintexts[v] = heys.Block(v)
		ciphertexts[v] = cipher.Encrypt(heys.Block(v))
	}
	return plaintexts, ciphertexts
}
