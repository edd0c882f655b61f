// Package driftsync implements the cryptographic core of the DriftSync
// client: authenticated encryption for everything that leaves or enters the
// device, key derivation from the account master secret, and a
// human-transcribable export format for the master secret itself.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - X25519 (RFC 7748): Elliptic-curve Diffie-Hellman for establishing
//     shared secrets between a sender and a recipient public key.
//
//   - XSalsa20-Poly1305 (NaCl box/secretbox): Authenticated encryption for
//     the sealed box and secret box envelope families. 24-byte nonces.
//
//   - AES-256-GCM: Alternate AEAD family with the same logical contract,
//     used on platforms where the NaCl primitives are unavailable.
//     12-byte nonces, 16-byte tags.
//
//   - HKDF-SHA-512 (RFC 5869): Derivation of purpose-scoped 256-bit keys
//     from the master secret with unambiguous domain separation.
//
// # Envelope Formats
//
// Every encrypt call emits one contiguous byte buffer:
//
//	sealed box:  ephemeralPublicKey(32) || nonce(24) || ciphertext+tag
//	secret box:  nonce(24) || ciphertext+tag
//	AES-GCM:     nonce(12) || ciphertext || tag(16)
//
// Nonces are always drawn fresh from the platform CSPRNG inside the encrypt
// call; they are never caller-supplied, so nonce reuse under a fixed key is
// structurally impossible.
//
// # Failure Model
//
// Decryption of untrusted input never fails loudly. Every Decrypt variant
// returns an ok-bool that is false for a wrong key, a tag mismatch, or a
// truncated or garbage envelope, with no indication of which, so callers can
// probe "is this addressed to me" without a side channel. Tag verification
// is constant time. No partial plaintext is ever returned.
//
// Wrong-size keys, seeds, and master secrets are programming errors, not
// runtime conditions: encrypt and derive operations report them as errors
// immediately, and Decrypt panics rather than masking them as an
// authentication failure.
//
// # Concurrency
//
// All operations are pure functions over in-memory buffers. There is no
// shared mutable state anywhere in the package; every function and both
// Cipher variants are safe for unrestricted concurrent use.
//
// # Backup Keys
//
// EncodeBackupKey renders a 32-byte master secret in a restricted base-32
// alphabet with no visually confusable symbols (no I, L, O, U), grouped for
// transcription. DecodeBackupKey reverses it, tolerating case changes and
// the common O/0 and I/L/1 substitutions.
//
// Keep private keys and master secrets secure. They must never be logged,
// transmitted in cleartext, or stored in version control; the master secret
// leaves the device only through EncodeBackupKey.
package driftsync
