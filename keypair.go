package driftsync

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
)

// randReader is the random source used for key generation.
// It defaults to crypto/rand and can be overridden in tests.
var randReader io.Reader = rand.Reader

// Keypair represents an X25519 keypair. The private key never leaves the
// device; the public key is freely shareable.
type Keypair struct {
	// PublicKey is the raw X25519 public key bytes.
	PublicKey []byte
	// PrivateKey is the raw X25519 private key bytes.
	PrivateKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeypair creates a new X25519 keypair from the platform CSPRNG.
func GenerateKeypair() (*Keypair, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(randReader, seed); err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return KeypairFromSeed(seed)
}

// KeypairFromSeed derives an X25519 keypair deterministically from a 32-byte
// seed. Equal seeds always yield equal keypairs. The seed itself becomes the
// private key; clamping per RFC 7748 happens inside the scalar
// multiplication, so the derived public key matches what the box primitives
// compute from the same private bytes.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSeedSize, len(seed), SeedSize)
	}

	var pub, priv x25519.Key
	copy(priv[:], seed)
	x25519.KeyGen(&pub, &priv)

	return &Keypair{
		PublicKey:    pub[:],
		PrivateKey:   append([]byte(nil), seed...),
		PublicKeyB64: ToBase64URL(pub[:]),
	}, nil
}

// PublicKeyFromPrivate recomputes the X25519 public key for a private key.
func PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), PrivateKeySize)
	}

	var pub, priv x25519.Key
	copy(priv[:], privateKey)
	x25519.KeyGen(&pub, &priv)

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, pub[:])
	return publicKey, nil
}

// ValidateKeypair validates that a keypair has the correct structure: both
// key sizes, a matching base64 rendering, and a public key that is actually
// derived from the private key. Returns true if all checks pass.
func ValidateKeypair(keypair *Keypair) bool {
	if keypair == nil {
		return false
	}

	if len(keypair.PublicKey) != PublicKeySize || len(keypair.PrivateKey) != PrivateKeySize {
		return false
	}

	decoded, err := FromBase64URL(keypair.PublicKeyB64)
	if err != nil || subtle.ConstantTimeCompare(decoded, keypair.PublicKey) != 1 {
		return false
	}

	derived, err := PublicKeyFromPrivate(keypair.PrivateKey)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(derived, keypair.PublicKey) == 1
}
