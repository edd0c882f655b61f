package driftsync

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKeypair(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if len(kp.PublicKey) != PublicKeySize {
		t.Errorf("PublicKey size = %d, want %d", len(kp.PublicKey), PublicKeySize)
	}

	if len(kp.PrivateKey) != PrivateKeySize {
		t.Errorf("PrivateKey size = %d, want %d", len(kp.PrivateKey), PrivateKeySize)
	}

	if kp.PublicKeyB64 == "" {
		t.Error("PublicKeyB64 is empty")
	}

	decoded, err := FromBase64URL(kp.PublicKeyB64)
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if !bytes.Equal(decoded, kp.PublicKey) {
		t.Error("PublicKeyB64 does not decode to PublicKey")
	}
}

func TestGenerateKeypair_Uniqueness(t *testing.T) {
	kp1, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	kp2, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	if bytes.Equal(kp1.PublicKey, kp2.PublicKey) {
		t.Error("Generated keypairs have identical public keys")
	}

	if bytes.Equal(kp1.PrivateKey, kp2.PrivateKey) {
		t.Error("Generated keypairs have identical private keys")
	}
}

func TestKeypairFromSeed_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedSize)

	kp1, err := KeypairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeypairFromSeed() error = %v", err)
	}

	kp2, err := KeypairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeypairFromSeed() error = %v", err)
	}

	if !bytes.Equal(kp1.PublicKey, kp2.PublicKey) {
		t.Error("same seed produced different public keys")
	}
	if !bytes.Equal(kp1.PrivateKey, kp2.PrivateKey) {
		t.Error("same seed produced different private keys")
	}
}

func TestKeypairFromSeed_DistinctSeeds(t *testing.T) {
	seedA := bytes.Repeat([]byte{0x01}, SeedSize)
	seedB := bytes.Repeat([]byte{0x02}, SeedSize)

	kpA, err := KeypairFromSeed(seedA)
	if err != nil {
		t.Fatalf("KeypairFromSeed(seedA) error = %v", err)
	}

	kpB, err := KeypairFromSeed(seedB)
	if err != nil {
		t.Fatalf("KeypairFromSeed(seedB) error = %v", err)
	}

	if bytes.Equal(kpA.PublicKey, kpB.PublicKey) {
		t.Error("distinct seeds produced identical public keys")
	}
}

func TestKeypairFromSeed_InvalidSeedSize(t *testing.T) {
	tests := []struct {
		name     string
		seedSize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"too long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeypairFromSeed(make([]byte, tt.seedSize))
			if !errors.Is(err, ErrInvalidSeedSize) {
				t.Errorf("KeypairFromSeed() error = %v, want ErrInvalidSeedSize", err)
			}
		})
	}
}

func TestPublicKeyFromPrivate(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	derived, err := PublicKeyFromPrivate(kp.PrivateKey)
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}

	if !bytes.Equal(derived, kp.PublicKey) {
		t.Error("derived public key does not match generated public key")
	}

	if _, err := PublicKeyFromPrivate(make([]byte, 16)); !errors.Is(err, ErrInvalidPrivateKeySize) {
		t.Errorf("PublicKeyFromPrivate(short) error = %v, want ErrInvalidPrivateKeySize", err)
	}
}

func TestValidateKeypair(t *testing.T) {
	valid, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	mismatched, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	mismatched.PublicKey = append([]byte(nil), valid.PublicKey...)
	mismatched.PublicKeyB64 = valid.PublicKeyB64

	tests := []struct {
		name    string
		keypair *Keypair
		want    bool
	}{
		{"valid", valid, true},
		{"nil", nil, false},
		{"short public key", &Keypair{PublicKey: make([]byte, 16), PrivateKey: valid.PrivateKey, PublicKeyB64: valid.PublicKeyB64}, false},
		{"short private key", &Keypair{PublicKey: valid.PublicKey, PrivateKey: make([]byte, 16), PublicKeyB64: valid.PublicKeyB64}, false},
		{"bad base64", &Keypair{PublicKey: valid.PublicKey, PrivateKey: valid.PrivateKey, PublicKeyB64: "!!!"}, false},
		{"public key not derived from private key", mismatched, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKeypair(tt.keypair); got != tt.want {
				t.Errorf("ValidateKeypair() = %v, want %v", got, tt.want)
			}
		})
	}
}
