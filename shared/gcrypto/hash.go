// Package gcrypto wraps the hashing primitives used across GIX. All digests
// are 32 bytes; the backing primitive is BLAKE3.
package gcrypto

import (
	"lukechampine.com/blake3"
)

// DigestLength is the byte length of every digest produced by this package.
const DigestLength = 32

// Hash returns the BLAKE3 digest of data.
func Hash(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// HashKeyed returns the keyed BLAKE3 digest of data under a 32-byte key.
func HashKeyed(key [32]byte, data []byte) [32]byte {
	h := blake3.New(DigestLength, key[:])
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeriveKey derives a 32-byte subkey from key material in an
// application-specific context. The context should be a hardcoded,
// human-readable string unique to the caller.
func DeriveKey(context string, material []byte) [32]byte {
	var out [32]byte
	blake3.DeriveKey(out[:], context, material)
	return out
}
