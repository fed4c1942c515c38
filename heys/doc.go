// Package heys implements the toy 16-bit substitution-permutation network
// from Howard Heys' "A Tutorial on Linear and Differential Cryptanalysis"
// (https://www.engr.mun.ca/~howard/PAPERS/ldc_tutorial.pdf).
//
// The cipher operates on 16-bit blocks and runs four rounds, each mixing a
// round key by XOR, substituting the four nibbles through a fixed 4-bit S-box,
// and (for all but the last round) relocating the sixteen bits through a fixed
// permutation. A fifth round key whitens the output. Round keys are supplied
// directly; there is no key schedule.
//
// The cipher is intentionally weak. It exists as the target of the linear
// cryptanalysis in the companion linear package and must never be used to
// protect real data.
//
// # Basic Usage
//
//	cipher, err := heys.NewCipher([]int{0x6942, 0x1234, 0x5678, 0xABCD, 0xEFEF})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext := cipher.Encrypt(heys.Block(0xCAFE))
//	plaintext := cipher.Decrypt(ciphertext) // == heys.Block(0xCAFE)
package heys
