package driftsync

import "encoding/base64"

// Base64 is not part of the cryptographic logic; these helpers exist so the
// transport/storage layers can interchange opaque envelope bytes inside
// JSON documents.

// ToBase64URL encodes bytes to URL-safe base64 without padding (RFC 4648 §5).
// Used for protocol values: keys, nonces, envelopes.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe unpadded base64.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// ToBase64 encodes bytes to standard base64 with padding (RFC 4648 §4).
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
