package driftsync

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// SecretBoxEncrypt encrypts plaintext under a pre-shared 32-byte key using
// XSalsa20-Poly1305 with a fresh random nonce.
//
// The envelope layout is:
//
//	nonce(24) || ciphertext+tag
func SecretBoxEncrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	var nonce [BoxNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	var k [KeySize]byte
	copy(k[:], key)

	envelope := make([]byte, 0, SecretBoxOverhead+len(plaintext))
	envelope = append(envelope, nonce[:]...)
	return secretbox.Seal(envelope, plaintext, &nonce, &k), nil
}

// SecretBoxDecrypt opens a secret box envelope. Envelopes shorter than the
// nonce are rejected outright; any tag-verification failure returns
// (nil, false). It never reveals why an envelope failed to open.
//
// SecretBoxDecrypt panics if key is not KeySize bytes.
func SecretBoxDecrypt(envelope, key []byte) ([]byte, bool) {
	if len(key) != KeySize {
		panic(fmt.Sprintf("driftsync: secret box key must be %d bytes, got %d", KeySize, len(key)))
	}

	if len(envelope) < BoxNonceSize {
		return nil, false
	}

	var nonce [BoxNonceSize]byte
	copy(nonce[:], envelope[:BoxNonceSize])

	var k [KeySize]byte
	copy(k[:], key)

	return secretbox.Open(nil, envelope[BoxNonceSize:], &nonce, &k)
}
