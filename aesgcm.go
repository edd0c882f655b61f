package driftsync

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// AESGCMEncrypt encrypts plaintext using AES-256-GCM with a fresh random
// nonce. This is the alternate AEAD family for platforms where the NaCl
// primitives are unavailable; it carries the same logical contract as the
// secret box.
//
// The envelope layout is:
//
//	nonce(12) || ciphertext || tag(16)
func AESGCMEncrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	nonce := make([]byte, AESNonceSize, AESNonceSize+len(plaintext)+AESTagSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// AESGCMDecrypt opens an AES-256-GCM envelope. Envelopes shorter than
// nonce+tag and any tag-verification failure return (nil, false).
//
// AESGCMDecrypt panics if key is not AESKeySize bytes: a wrong-length key is
// a programming error and must not be reported as an authentication failure.
func AESGCMDecrypt(envelope, key []byte) ([]byte, bool) {
	if len(key) != AESKeySize {
		panic(fmt.Sprintf("driftsync: AES-256-GCM key must be %d bytes, got %d", AESKeySize, len(key)))
	}

	if len(envelope) < AESNonceSize+AESTagSize {
		return nil, false
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, false
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, false
	}

	plaintext, err := gcm.Open(nil, envelope[:AESNonceSize], envelope[AESNonceSize:], nil)
	if err != nil {
		return nil, false
	}
	return plaintext, true
}

// IsAESGCMEncrypted reports whether bytes are structurally capable of being
// an AES-GCM envelope. It is a cheap length check, not an authenticity
// check; use it to decide which cipher family to attempt when an envelope
// is not otherwise tagged with its family.
func IsAESGCMEncrypted(envelope []byte) bool {
	return len(envelope) >= AESNonceSize+AESTagSize
}
