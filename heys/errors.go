package heys

import "errors"

var (
	// ErrBlockRange is returned when an integer block value or round key falls outside [0, 65535].
	ErrBlockRange = errors.New("heys: value outside 16-bit range")

	// ErrBlockEncoding is returned when a binary-string block encoding is not exactly 16 '0'/'1' characters.
	ErrBlockEncoding = errors.New("heys: malformed block encoding")

	// ErrNotBijective is returned when a substitution or permutation table is not a bijection over its domain.
	ErrNotBijective = errors.New("heys: table is not a bijection")

	// ErrRoundKeyCount is returned when a cipher is constructed with a number of round keys other than 5.
	ErrRoundKeyCount = errors.New("heys: cipher requires exactly 5 round keys")
)
