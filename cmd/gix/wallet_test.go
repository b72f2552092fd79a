package main

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/gixlabs/gix/shared/gcrypto/bls"
	"github.com/gixlabs/gix/shared/testutil/assert"
	"github.com/gixlabs/gix/shared/testutil/require"
)

func TestWallet_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	w := NewWallet()
	require.NoError(t, w.Save(path))

	loaded, err := LoadWallet(path)
	require.NoError(t, err)
	assert.Equal(t, w.PublicKey, loaded.PublicKey)
	assert.Equal(t, w.SecretKey, loaded.SecretKey)

	loose, err := HasLoosePermissions(path)
	require.NoError(t, err)
	assert.Equal(t, false, loose)
}

func TestWallet_SaveRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, NewWallet().Save(path))
	err := NewWallet().Save(path)
	require.ErrorContains(t, "refusing to overwrite", err)
}

func TestWallet_SignVerifies(t *testing.T) {
	w := NewWallet()
	msg := []byte("job payload bytes")
	sig, err := w.Sign(msg)
	require.NoError(t, err)
	require.Equal(t, bls.SignatureLength, len(sig))

	pubRaw, err := hex.DecodeString(w.PublicKey)
	require.NoError(t, err)
	pub, err := bls.PublicKeyFromBytes(pubRaw)
	require.NoError(t, err)
	signature, err := bls.SignatureFromBytes(sig)
	require.NoError(t, err)
	assert.Equal(t, true, signature.Verify(pub, msg))
}

func TestLoadWallet_BadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	w := NewWallet()
	w.Version = 99
	require.NoError(t, w.Save(path))
	_, err := LoadWallet(path)
	require.ErrorContains(t, "unsupported wallet version", err)
}
