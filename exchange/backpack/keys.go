package backpack

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

//
// KeyPair holds the Ed25519 key a client signs with. Only the verifying half is ever handed back
// to callers.
//
type KeyPair struct {
	signing   ed25519.PrivateKey
	verifying ed25519.PublicKey
}

//
// NewKeyPair decodes a base64 (standard alphabet) 32 byte Ed25519 seed. Input that is not base64
// fails with ErrMalformedSecret; input of the wrong decoded length fails with ErrInvalidSecretKey.
//
func NewKeyPair(secret string) (*KeyPair, error) {
	seed, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, &ConfigError{
			Field: "secret",
			Err:   fmt.Errorf("%w: %w", ErrMalformedSecret, err),
		}
	}

	if len(seed) != ed25519.SeedSize {
		return nil, &ConfigError{
			Field: "secret",
			Err:   fmt.Errorf("%w: decoded to %d bytes, want %d", ErrInvalidSecretKey, len(seed), ed25519.SeedSize),
		}
	}

	return newKeyPairFromSeed(seed), nil
}

//
// GenerateKeyPair creates a fresh random key pair and returns it along with its base64 secret.
//
func GenerateKeyPair() (*KeyPair, string, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, "", err
	}

	return newKeyPairFromSeed(seed), base64.StdEncoding.EncodeToString(seed), nil
}

func newKeyPairFromSeed(seed []byte) *KeyPair {
	signing := ed25519.NewKeyFromSeed(seed)

	return &KeyPair{
		signing:   signing,
		verifying: signing.Public().(ed25519.PublicKey),
	}
}

//
// Sign returns the Ed25519 signature of message.
//
func (o *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(o.signing, message)
}

//
// VerifyingKey returns a copy of the public key.
//
func (o *KeyPair) VerifyingKey() ed25519.PublicKey {
	out := make(ed25519.PublicKey, len(o.verifying))
	copy(out, o.verifying)

	return out
}

//
// VerifyingKeyBase64 returns the public key in the form the exchange expects as the API key.
//
func (o *KeyPair) VerifyingKeyBase64() string {
	return base64.StdEncoding.EncodeToString(o.verifying)
}

func (o *KeyPair) signBase64(message string) string {
	return base64.StdEncoding.EncodeToString(o.Sign([]byte(message)))
}
