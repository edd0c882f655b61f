package driftsync

const (
	// KDFContext is the context string used in HKDF key derivation
	// for domain separation.
	KDFContext = "driftsync:kdf:v1"

	// MasterSecretSize is the size of the account master secret in bytes.
	MasterSecretSize = 32

	// KeySize is the size of a symmetric encryption key in bytes.
	KeySize = 32
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = 32
	// PrivateKeySize is the size of an X25519 private key in bytes.
	PrivateKeySize = 32
	// SeedSize is the size of a keypair seed in bytes.
	SeedSize = 32

	// BoxNonceSize is the size of a NaCl box/secretbox nonce in bytes.
	BoxNonceSize = 24
	// BoxTagSize is the size of the Poly1305 authentication tag in bytes.
	BoxTagSize = 16

	// SecretBoxOverhead is the number of bytes a secret box envelope adds
	// on top of the plaintext.
	SecretBoxOverhead = BoxNonceSize + BoxTagSize
	// SealedBoxOverhead is the number of bytes a sealed box envelope adds
	// on top of the plaintext.
	SealedBoxOverhead = PublicKeySize + BoxNonceSize + BoxTagSize

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "X25519:XSalsa20-Poly1305:AES-256-GCM:HKDF-SHA-512"
