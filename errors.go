package driftsync

import "errors"

// Sentinel errors for errors.Is() checks. All of these indicate caller
// mistakes; failures caused by untrusted input are reported through ok-bools
// and *FormatError instead, never through these.
var (
	// ErrInvalidKeySize is returned when a symmetric key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidSeedSize is returned when a keypair seed is not SeedSize bytes.
	ErrInvalidSeedSize = errors.New("invalid seed size")

	// ErrInvalidPublicKeySize is returned when a public key is not
	// PublicKeySize bytes.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPrivateKeySize is returned when a private key is not
	// PrivateKeySize bytes.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidMasterSecretSize is returned when a master secret is not
	// MasterSecretSize bytes.
	ErrInvalidMasterSecretSize = errors.New("invalid master secret size")
)
