package driftsync

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// GenerateMasterSecret returns a fresh 32-byte account root secret from the
// platform CSPRNG. The master secret is never transmitted in cleartext and
// is exportable only through EncodeBackupKey.
func GenerateMasterSecret() ([]byte, error) {
	secret := make([]byte, MasterSecretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("generate master secret: %w", err)
	}
	return secret, nil
}

// DeriveKey derives a purpose-scoped 32-byte key from the master secret
// using HKDF-SHA-512. Derivation is deterministic: identical inputs always
// yield the same key, so derived keys are never stored and callers re-derive
// on demand.
//
// The label and path segments are length-prefixed in the HKDF info, so
// distinct (label, path) pairs can never produce the same input material:
// ["ab","c"] and ["a","bc"] derive different keys.
func DeriveKey(masterSecret []byte, label string, path []string) ([]byte, error) {
	if len(masterSecret) != MasterSecretSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMasterSecretSize, len(masterSecret), MasterSecretSize)
	}

	info := make([]byte, 0, len(KDFContext)+4+len(label)+4+8*len(path))
	info = append(info, KDFContext...)
	info = appendLenPrefixed(info, []byte(label))
	info = binary.BigEndian.AppendUint32(info, uint32(len(path)))
	for _, segment := range path {
		info = appendLenPrefixed(info, []byte(segment))
	}

	// Zero-filled salt, per RFC 5869 when no salt is provided.
	salt := make([]byte, sha512.Size)

	reader := hkdf.New(sha512.New, masterSecret, salt, info)
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	return key, nil
}

func appendLenPrefixed(dst, field []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(field)))
	return append(dst, field...)
}
