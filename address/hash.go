package address

import (
	"crypto/sha256"
	"hash"

	"github.com/vulpemventures/fastsha256"
	"golang.org/x/crypto/ripemd160"
)

// calcHash runs buf through hasher once.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates ripemd160(sha256(buf)), the payload of 160 bit
// addresses.
func Hash160(buf []byte) []byte {
	return calcHash(calcHash(buf, sha256.New()), ripemd160.New())
}

// Hash256 calculates sha256(sha256(buf)), the payload of 256 bit addresses.
func Hash256(buf []byte) []byte {
	first := fastsha256.Sum256(buf)
	second := fastsha256.Sum256(first[:])
	return second[:]
}
