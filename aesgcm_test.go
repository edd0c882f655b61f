package driftsync

import (
	"bytes"
	"errors"
	"testing"
)

func TestAESGCM_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"json", []byte(`{"foo": "bar", "num": 123}`)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := testKey(t)

			envelope, err := AESGCMEncrypt(tt.plaintext, key)
			if err != nil {
				t.Fatalf("AESGCMEncrypt() error = %v", err)
			}

			expectedLen := AESNonceSize + len(tt.plaintext) + AESTagSize
			if len(envelope) != expectedLen {
				t.Errorf("envelope length = %d, want %d", len(envelope), expectedLen)
			}

			plaintext, ok := AESGCMDecrypt(envelope, key)
			if !ok {
				t.Fatal("AESGCMDecrypt() ok = false, want true")
			}

			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", plaintext, tt.plaintext)
			}
		})
	}
}

func TestAESGCM_EmptyPlaintextEnvelopeSize(t *testing.T) {
	key := testKey(t)

	envelope, err := AESGCMEncrypt([]byte{}, key)
	if err != nil {
		t.Fatalf("AESGCMEncrypt() error = %v", err)
	}

	// nonce(12) + tag(16), nothing else
	if len(envelope) != 28 {
		t.Errorf("envelope length = %d, want 28", len(envelope))
	}

	plaintext, ok := AESGCMDecrypt(envelope, key)
	if !ok {
		t.Fatal("AESGCMDecrypt() ok = false, want true")
	}
	if len(plaintext) != 0 {
		t.Errorf("decrypted length = %d, want 0", len(plaintext))
	}
}

func TestAESGCM_FreshNonces(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same message twice")

	env1, err := AESGCMEncrypt(plaintext, key)
	if err != nil {
		t.Fatalf("AESGCMEncrypt() error = %v", err)
	}
	env2, err := AESGCMEncrypt(plaintext, key)
	if err != nil {
		t.Fatalf("AESGCMEncrypt() error = %v", err)
	}

	if bytes.Equal(env1, env2) {
		t.Error("two encryptions produced identical envelopes")
	}
	if bytes.Equal(env1[:AESNonceSize], env2[:AESNonceSize]) {
		t.Error("two encryptions reused the nonce")
	}
}

func TestAESGCMEncrypt_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"aes-128", 16},
		{"too long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AESGCMEncrypt([]byte("x"), make([]byte, tt.keySize))
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("AESGCMEncrypt() error = %v, want ErrInvalidKeySize", err)
			}
		})
	}
}

func TestAESGCMDecrypt_InvalidKeySizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AESGCMDecrypt() with short key did not panic")
		}
	}()
	AESGCMDecrypt(make([]byte, 64), make([]byte, 16))
}

func TestAESGCMDecrypt_UntrustedInput(t *testing.T) {
	key := testKey(t)
	wrongKey := testKey(t)

	envelope, err := AESGCMEncrypt([]byte("payload"), key)
	if err != nil {
		t.Fatalf("AESGCMEncrypt() error = %v", err)
	}

	tampered := append([]byte(nil), envelope...)
	tampered[len(tampered)-1] ^= 0x01

	t.Run("wrong key", func(t *testing.T) {
		if _, ok := AESGCMDecrypt(envelope, wrongKey); ok {
			t.Error("AESGCMDecrypt() with wrong key succeeded")
		}
	})

	garbage := []struct {
		name     string
		envelope []byte
	}{
		{"empty", nil},
		{"below minimum length", make([]byte, AESNonceSize+AESTagSize-1)},
		{"truncated", envelope[:len(envelope)-1]},
		{"tampered", tampered},
		{"random bytes", bytes.Repeat([]byte{0x5a}, 64)},
	}

	for _, tt := range garbage {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AESGCMDecrypt(tt.envelope, key); ok {
				t.Error("AESGCMDecrypt() succeeded on garbage input")
			}
		})
	}
}

func TestIsAESGCMEncrypted(t *testing.T) {
	tests := []struct {
		name string
		size int
		want bool
	}{
		{"empty", 0, false},
		{"one below minimum", AESNonceSize + AESTagSize - 1, false},
		{"exactly minimum", AESNonceSize + AESTagSize, true},
		{"typical", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAESGCMEncrypted(make([]byte, tt.size)); got != tt.want {
				t.Errorf("IsAESGCMEncrypted(%d bytes) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}
