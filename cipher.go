package driftsync

// Cipher is the capability shared by both symmetric AEAD families: encrypt
// a byte buffer under a 32-byte key, or report that an envelope cannot be
// opened. The host environment picks one implementation at startup
// (SecretBoxCipher where the NaCl primitives are available, AESGCMCipher
// otherwise) and callers depend only on this interface.
//
// Both implementations are stateless and safe for concurrent use.
type Cipher interface {
	// Encrypt encrypts plaintext under key with a fresh nonce and returns
	// the envelope. It fails only on caller errors (wrong key size) or a
	// CSPRNG failure.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt opens an envelope. It returns (nil, false) for any
	// untrusted-input failure and panics on a wrong-size key.
	Decrypt(envelope, key []byte) ([]byte, bool)

	// Overhead is the number of bytes an envelope adds to its plaintext.
	Overhead() int
}

// SecretBoxCipher implements Cipher with NaCl secretbox (XSalsa20-Poly1305).
type SecretBoxCipher struct{}

func (SecretBoxCipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	return SecretBoxEncrypt(plaintext, key)
}

func (SecretBoxCipher) Decrypt(envelope, key []byte) ([]byte, bool) {
	return SecretBoxDecrypt(envelope, key)
}

func (SecretBoxCipher) Overhead() int { return SecretBoxOverhead }

// AESGCMCipher implements Cipher with AES-256-GCM.
type AESGCMCipher struct{}

func (AESGCMCipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	return AESGCMEncrypt(plaintext, key)
}

func (AESGCMCipher) Decrypt(envelope, key []byte) ([]byte, bool) {
	return AESGCMDecrypt(envelope, key)
}

func (AESGCMCipher) Overhead() int { return AESNonceSize + AESTagSize }

// DefaultCipher returns the preferred cipher family for this platform.
func DefaultCipher() Cipher { return SecretBoxCipher{} }

// EncryptValue canonically serializes a structured value and encrypts it
// with the given cipher. Identical values always serialize to identical
// bytes, so the ciphertext differs between calls only through the nonce.
func EncryptValue(c Cipher, v Value, key []byte) ([]byte, error) {
	payload, err := MarshalValue(v)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(payload, key)
}

// DecryptValue opens an envelope and parses the plaintext back into a
// structured value. A payload that does not parse as a structured value is
// treated the same as an authentication failure: (Null(), false).
func DecryptValue(c Cipher, envelope, key []byte) (Value, bool) {
	payload, ok := c.Decrypt(envelope, key)
	if !ok {
		return Null(), false
	}
	v, err := UnmarshalValue(payload)
	if err != nil {
		return Null(), false
	}
	return v, true
}
