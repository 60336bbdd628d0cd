package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// HashSize is the size of every digest returned by this package.
const HashSize = 32

// Keccak256 returns the legacy Keccak-256 digest of the concatenated parts.
// It is the content hash behind account identifiers, ownership proofs and
// security tokens.
func Keccak256(parts ...[]byte) [HashSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [HashSize]byte
	h.Sum(out[:0])
	return out
}

// Sha512Half returns the first 32 bytes of the SHA-512 digest of the
// concatenated parts.
func Sha512Half(parts ...[]byte) [HashSize]byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	var out [HashSize]byte
	copy(out[:], sum[:HashSize])
	return out
}
