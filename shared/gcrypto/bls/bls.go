// Package bls wraps the BLS12-381 signature scheme used for wallet keys and
// envelope payload signatures.
package bls

import (
	"bytes"

	herumi "github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
)

// Serialized lengths in bytes.
const (
	SecretKeyLength = 32
	PublicKeyLength = 48
	SignatureLength = 96
)

var (
	// ErrZeroKey describes an error due to a zero secret key.
	ErrZeroKey = errors.New("received secret key is zero")
	// ErrInfinitePubKey describes an error due to an infinite public key.
	ErrInfinitePubKey = errors.New("received an infinite public key")
)

var zeroSecretKey = [SecretKeyLength]byte{}
var infinitePublicKey = [PublicKeyLength]byte{0xC0}

func init() {
	if err := herumi.Init(herumi.BLS12_381); err != nil {
		panic(err)
	}
	if err := herumi.SetETHmode(herumi.EthModeDraft07); err != nil {
		panic(err)
	}
	// Check subgroup order for pubkeys and signatures.
	herumi.VerifyPublicKeyOrder(true)
	herumi.VerifySignatureOrder(true)
}

// SecretKey used in the BLS signature scheme.
type SecretKey struct {
	p *herumi.SecretKey
}

// PublicKey corresponding to a secret key.
type PublicKey struct {
	p *herumi.PublicKey
}

// Signature over a message.
type Signature struct {
	s *herumi.Sign
}

// RandKey creates a new private key using a random input.
func RandKey() *SecretKey {
	sec := &herumi.SecretKey{}
	sec.SetByCSPRNG()
	return &SecretKey{p: sec}
}

// SecretKeyFromBytes creates a BLS private key from a byte slice.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != SecretKeyLength {
		return nil, errors.Errorf("secret key must be %d bytes", SecretKeyLength)
	}
	if bytes.Equal(b, zeroSecretKey[:]) {
		return nil, ErrZeroKey
	}
	sec := &herumi.SecretKey{}
	if err := sec.Deserialize(b); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal secret key")
	}
	return &SecretKey{p: sec}, nil
}

// PublicKeyFromBytes creates a BLS public key from a byte slice.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLength {
		return nil, errors.Errorf("public key must be %d bytes", PublicKeyLength)
	}
	if bytes.Equal(b, infinitePublicKey[:]) {
		return nil, ErrInfinitePubKey
	}
	pub := &herumi.PublicKey{}
	if err := pub.Deserialize(b); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal public key")
	}
	return &PublicKey{p: pub}, nil
}

// SignatureFromBytes creates a BLS signature from a byte slice.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureLength {
		return nil, errors.Errorf("signature must be %d bytes", SignatureLength)
	}
	sig := &herumi.Sign{}
	if err := sig.Deserialize(b); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal signature")
	}
	return &Signature{s: sig}, nil
}

// PublicKey derives the public key of k.
func (k *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{p: k.p.GetPublicKey()}
}

// Sign a message using the secret key.
func (k *SecretKey) Sign(msg []byte) *Signature {
	return &Signature{s: k.p.SignByte(msg)}
}

// Marshal the secret key into its serialized form.
func (k *SecretKey) Marshal() []byte {
	return k.p.Serialize()
}

// Marshal the public key into its serialized form.
func (p *PublicKey) Marshal() []byte {
	return p.p.Serialize()
}

// Verify the signature against a public key and message.
func (s *Signature) Verify(pub *PublicKey, msg []byte) bool {
	return s.s.VerifyByte(pub.p, msg)
}

// Marshal the signature into its serialized form.
func (s *Signature) Marshal() []byte {
	return s.s.Serialize()
}
