// Command heys-demo encrypts blocks under a Heys cipher and prints
// "plaintext -> ciphertext" traces, verifying every decrypt round trip along
// the way. Without -block it traces the full codebook.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	keysFlag := flag.String("keys", "0x6942,0x1234,0x5678,0xabcd,0xefef",
		"comma-separated list of the 5 round keys")
	blockFlag := flag.String("block", "",
		"a single plaintext block (hex, decimal, or 16-digit binary); all 65536 blocks when empty")
	flag.Parse()

	keys, err := parseKeys(*keysFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid round keys")
	}
	cipher, err := heys.NewCipher(keys)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cipher configuration")
	}

	if *blockFlag != "" {
		plaintext, err := parseBlock(*blockFlag)
		if err != nil {
			log.Fatal().Err(err).Str("block", *blockFlag).Msg("invalid block")
		}
		trace(log, cipher, plaintext)
		return
	}

	for v := range 1 << 16 {
		trace(log, cipher, heys.Block(v))
	}
}

func trace(log zerolog.Logger, cipher *heys.Cipher, plaintext heys.Block) {
	ciphertext := cipher.Encrypt(plaintext)
	if got := cipher.Decrypt(ciphertext); got != plaintext {
		log.Fatal().
			Stringer("plaintext", plaintext).
			Stringer("decrypted", got).
			Msg("decrypt round trip mismatch")
	}
	fmt.Printf("%v -> %v\n", plaintext, ciphertext)
}

func parseKeys(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		k, err := strconv.ParseUint(strings.TrimSpace(part), 0, 16)
		if err != nil {
			return nil, fmt.Errorf("round key %q: %w", part, err)
		}
		keys = append(keys, int(k))
	}
	return keys, nil
}

// parseBlock accepts the 16-digit binary form used by vector files as well as
// hex and decimal integer literals.
func parseBlock(s string) (heys.Block, error) {
	if b, err := heys.ParseBlock(s); err == nil {
		return b, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return heys.Block(v), nil
}
