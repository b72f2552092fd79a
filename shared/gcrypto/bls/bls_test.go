package bls_test

import (
	"testing"

	"github.com/gixlabs/gix/shared/gcrypto/bls"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func TestSignVerify(t *testing.T) {
	key := bls.RandKey()
	msg := []byte("compute job payload")
	sig := key.Sign(msg)
	assert.Equal(t, true, sig.Verify(key.PublicKey(), msg), "signature did not verify")
	assert.Equal(t, false, sig.Verify(key.PublicKey(), []byte("tampered")), "signature verified tampered message")

	other := bls.RandKey()
	assert.Equal(t, false, sig.Verify(other.PublicKey(), msg), "signature verified under wrong key")
}

func TestSecretKeyRoundTrip(t *testing.T) {
	key := bls.RandKey()
	raw := key.Marshal()
	require.Equal(t, bls.SecretKeyLength, len(raw))

	restored, err := bls.SecretKeyFromBytes(raw)
	require.NoError(t, err)
	assert.DeepEqual(t, key.PublicKey().Marshal(), restored.PublicKey().Marshal())
}

func TestSecretKeyFromBytes_RejectsZero(t *testing.T) {
	_, err := bls.SecretKeyFromBytes(make([]byte, bls.SecretKeyLength))
	require.ErrorIs(t, err, bls.ErrZeroKey)
}

func TestSecretKeyFromBytes_RejectsBadLength(t *testing.T) {
	_, err := bls.SecretKeyFromBytes(make([]byte, 31))
	assert.ErrorContains(t, "must be 32 bytes", err)
}

func TestPublicKeyRoundTrip(t *testing.T) {
	pub := bls.RandKey().PublicKey()
	raw := pub.Marshal()
	require.Equal(t, bls.PublicKeyLength, len(raw))

	restored, err := bls.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.DeepEqual(t, raw, restored.Marshal())
}

func TestSignatureRoundTrip(t *testing.T) {
	key := bls.RandKey()
	msg := []byte("payload")
	raw := key.Sign(msg).Marshal()
	require.Equal(t, bls.SignatureLength, len(raw))

	sig, err := bls.SignatureFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, true, sig.Verify(key.PublicKey(), msg))
}
