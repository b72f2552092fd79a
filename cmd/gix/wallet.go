package main

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gixlabs/gix/shared/fileutil"
	"github.com/gixlabs/gix/shared/gcrypto/bls"
	"github.com/pkg/errors"
)

// walletVersion is bumped whenever the on-disk wallet layout changes.
const walletVersion = 1

// Wallet is the on-disk form of a CLI signing key. The secret key is
// stored hex-encoded in a file with owner-only permissions.
type Wallet struct {
	Version   int    `json:"version"`
	SecretKey string `json:"secret_key"`
	PublicKey string `json:"public_key"`
}

// NewWallet generates a fresh BLS keypair.
func NewWallet() *Wallet {
	key := bls.RandKey()
	return &Wallet{
		Version:   walletVersion,
		SecretKey: hex.EncodeToString(key.Marshal()),
		PublicKey: hex.EncodeToString(key.PublicKey().Marshal()),
	}
}

// Save writes the wallet to path with 0600 permissions, refusing to
// overwrite an existing file.
func (w *Wallet) Save(path string) error {
	if fileutil.FileExists(path) {
		return errors.Errorf("wallet already exists at %s, refusing to overwrite", path)
	}
	if err := fileutil.MkdirAll(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "could not create wallet directory")
	}
	enc, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize wallet")
	}
	return fileutil.WriteFile(path, enc)
}

// LoadWallet reads a wallet file and checks its layout version.
func LoadWallet(path string) (*Wallet, error) {
	data, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "could not read wallet file")
	}
	w := &Wallet{}
	if err := json.Unmarshal(data, w); err != nil {
		return nil, errors.Wrap(err, "could not parse wallet file")
	}
	if w.Version != walletVersion {
		return nil, errors.Errorf("unsupported wallet version %d", w.Version)
	}
	if _, err := w.secretKey(); err != nil {
		return nil, err
	}
	return w, nil
}

// HasLoosePermissions reports whether the wallet file is readable by
// anyone besides its owner.
func HasLoosePermissions(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0077 != 0, nil
}

func (w *Wallet) secretKey() (*bls.SecretKey, error) {
	raw, err := hex.DecodeString(w.SecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "malformed secret key hex")
	}
	return bls.SecretKeyFromBytes(raw)
}

// Sign signs msg with the wallet's secret key.
func (w *Wallet) Sign(msg []byte) ([]byte, error) {
	key, err := w.secretKey()
	if err != nil {
		return nil, err
	}
	return key.Sign(msg).Marshal(), nil
}
