package driftsync

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// SealedBoxEncrypt encrypts plaintext to a recipient's public key using a
// fresh ephemeral sender keypair that is discarded after the call, giving
// per-message forward secrecy.
//
// The envelope layout is:
//
//	ephemeralPublicKey(32) || nonce(24) || ciphertext+tag
func SealedBoxEncrypt(plaintext, recipientPublicKey []byte) ([]byte, error) {
	if len(recipientPublicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(recipientPublicKey), PublicKeySize)
	}

	ephemeralPub, ephemeralPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral keypair: %w", err)
	}

	var nonce [BoxNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	var recipientPub [PublicKeySize]byte
	copy(recipientPub[:], recipientPublicKey)

	envelope := make([]byte, 0, SealedBoxOverhead+len(plaintext))
	envelope = append(envelope, ephemeralPub[:]...)
	envelope = append(envelope, nonce[:]...)
	return box.Seal(envelope, plaintext, &nonce, &recipientPub, ephemeralPriv), nil
}

// SealedBoxDecrypt opens a sealed box envelope with the recipient's private
// key. It returns the plaintext and true only if the authentication tag
// verifies. Any failure on untrusted input (an envelope too short to carry
// the ephemeral key and nonce, a tag mismatch, a wrong key) returns
// (nil, false) with no indication of the cause.
//
// SealedBoxDecrypt panics if recipientPrivateKey is not PrivateKeySize
// bytes; that is a programming error, not an untrusted-input condition.
func SealedBoxDecrypt(envelope, recipientPrivateKey []byte) ([]byte, bool) {
	if len(recipientPrivateKey) != PrivateKeySize {
		panic(fmt.Sprintf("driftsync: recipient private key must be %d bytes, got %d", PrivateKeySize, len(recipientPrivateKey)))
	}

	if len(envelope) < PublicKeySize+BoxNonceSize+BoxTagSize {
		return nil, false
	}

	var ephemeralPub [PublicKeySize]byte
	copy(ephemeralPub[:], envelope[:PublicKeySize])

	var nonce [BoxNonceSize]byte
	copy(nonce[:], envelope[PublicKeySize:PublicKeySize+BoxNonceSize])

	var priv [PrivateKeySize]byte
	copy(priv[:], recipientPrivateKey)

	return box.Open(nil, envelope[PublicKeySize+BoxNonceSize:], &nonce, &ephemeralPub, &priv)
}
