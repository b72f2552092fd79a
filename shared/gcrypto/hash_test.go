package gcrypto_test

import (
	"testing"

	"github.com/gixlabs/gix/shared/gcrypto"
	"github.com/gixlabs/gix/shared/testutil/assert"
)

func TestHash_Deterministic(t *testing.T) {
	input := []byte("test input")
	h1 := gcrypto.Hash(input)
	h2 := gcrypto.Hash(input)
	assert.Equal(t, h1, h2)
	assert.Equal(t, gcrypto.DigestLength, len(h1))
	assert.NotEqual(t, h1, gcrypto.Hash([]byte("other input")))
}

func TestHashKeyed_Deterministic(t *testing.T) {
	input := []byte("test input")
	var key [32]byte
	h1 := gcrypto.HashKeyed(key, input)
	h2 := gcrypto.HashKeyed(key, input)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, gcrypto.Hash(input), "keyed digest must differ from plain digest")

	key[0] = 1
	assert.NotEqual(t, h1, gcrypto.HashKeyed(key, input), "different keys must produce different digests")
}

func TestDeriveKey(t *testing.T) {
	material := []byte("same input")
	k1 := gcrypto.DeriveKey("context1", material)
	k2 := gcrypto.DeriveKey("context1", material)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, gcrypto.DeriveKey("context2", material), "different contexts must produce different keys")
}
