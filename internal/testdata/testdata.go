// Package testdata provides deterministic pseudorandom data for seeding test
// corpora and fuzz targets.
package testdata

import (
	"crypto/sha3"
	"encoding/binary"
)

// A DRBG is a deterministic random bit generator over SHAKE128. Two DRBGs
// created with the same domain produce the same stream.
type DRBG struct {
	shake *sha3.SHAKE
}

// New returns a DRBG seeded with the given domain string.
func New(domain string) *DRBG {
	shake := sha3.NewSHAKE128()
	_, _ = shake.Write([]byte(domain))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	buf := make([]byte, n)
	_, _ = d.shake.Read(buf)
	return buf
}

// Uint16 returns the next 16 bits of the stream as a big-endian integer.
func (d *DRBG) Uint16() uint16 {
	return binary.BigEndian.Uint16(d.Data(2))
}
