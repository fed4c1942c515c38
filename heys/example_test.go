package heys_test

import (
	"fmt"
	"log"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

func ExampleCipher() {
	cipher, err := heys.NewCipher([]int{0x6942, 0x1234, 0x5678, 0xABCD, 0xEFEF})
	if err != nil {
		log.Fatal(err)
	}

	plaintext := heys.Block(0xCAFE)
	ciphertext := cipher.Encrypt(plaintext)

	fmt.Println(cipher.Decrypt(ciphertext) == plaintext)
	// Output: true
}

func ExampleParseBlock() {
	block, err := heys.ParseBlock("1010101010101010")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(block)
	// Output: 0xaaaa
}
