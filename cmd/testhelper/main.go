// Command testhelper exposes the driftsync crypto core over JSON stdio so
// the cross-implementation interop suite can check wire compatibility byte
// for byte against the reference implementation.
//
// Each command reads a single JSON request from stdin and writes a single
// JSON response to stdout. Binary fields are URL-safe unpadded base64.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	driftsync "github.com/driftsync/crypto-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command>")
	}

	switch os.Args[1] {
	case "generate-keypair":
		generateKeypair()
	case "keypair-from-seed":
		keypairFromSeed()
	case "sealedbox-encrypt":
		sealedboxEncrypt()
	case "sealedbox-decrypt":
		sealedboxDecrypt()
	case "secretbox-encrypt":
		secretboxEncrypt()
	case "secretbox-decrypt":
		secretboxDecrypt()
	case "aesgcm-encrypt":
		aesgcmEncrypt()
	case "aesgcm-decrypt":
		aesgcmDecrypt()
	case "derive-key":
		deriveKey()
	case "encode-backup-key":
		encodeBackupKey()
	case "decode-backup-key":
		decodeBackupKey()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func generateKeypair() {
	kp, err := driftsync.GenerateKeypair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}
	writeResponse(keypairOutput{
		PublicKey:  driftsync.ToBase64URL(kp.PublicKey),
		PrivateKey: driftsync.ToBase64URL(kp.PrivateKey),
	})
}

func keypairFromSeed() {
	var req struct {
		Seed string `json:"seed"`
	}
	readRequest(&req)

	kp, err := driftsync.KeypairFromSeed(decodeField("seed", req.Seed))
	if err != nil {
		fatal("keypair from seed: %v", err)
	}
	writeResponse(keypairOutput{
		PublicKey:  driftsync.ToBase64URL(kp.PublicKey),
		PrivateKey: driftsync.ToBase64URL(kp.PrivateKey),
	})
}

func sealedboxEncrypt() {
	var req struct {
		Plaintext          string `json:"plaintext"`
		RecipientPublicKey string `json:"recipientPublicKey"`
	}
	readRequest(&req)

	envelope, err := driftsync.SealedBoxEncrypt(
		decodeField("plaintext", req.Plaintext),
		decodeField("recipientPublicKey", req.RecipientPublicKey),
	)
	if err != nil {
		fatal("sealed box encrypt: %v", err)
	}
	writeResponse(envelopeOutput{Envelope: driftsync.ToBase64URL(envelope)})
}

func sealedboxDecrypt() {
	var req struct {
		Envelope            string `json:"envelope"`
		RecipientPrivateKey string `json:"recipientPrivateKey"`
	}
	readRequest(&req)

	key := decodeField("recipientPrivateKey", req.RecipientPrivateKey)
	if len(key) != driftsync.PrivateKeySize {
		fatal("recipient private key must be %d bytes", driftsync.PrivateKeySize)
	}

	plaintext, ok := driftsync.SealedBoxDecrypt(decodeField("envelope", req.Envelope), key)
	writeResponse(decryptOutput{OK: ok, Plaintext: driftsync.ToBase64URL(plaintext)})
}

func secretboxEncrypt() {
	payload, key := readSymmetricRequest()
	envelope, err := driftsync.SecretBoxEncrypt(payload, key)
	if err != nil {
		fatal("secret box encrypt: %v", err)
	}
	writeResponse(envelopeOutput{Envelope: driftsync.ToBase64URL(envelope)})
}

func secretboxDecrypt() {
	envelope, key := readSymmetricRequest()
	plaintext, ok := driftsync.SecretBoxDecrypt(envelope, key)
	writeResponse(decryptOutput{OK: ok, Plaintext: driftsync.ToBase64URL(plaintext)})
}

func aesgcmEncrypt() {
	payload, key := readSymmetricRequest()
	envelope, err := driftsync.AESGCMEncrypt(payload, key)
	if err != nil {
		fatal("aes-gcm encrypt: %v", err)
	}
	writeResponse(envelopeOutput{Envelope: driftsync.ToBase64URL(envelope)})
}

func aesgcmDecrypt() {
	envelope, key := readSymmetricRequest()
	plaintext, ok := driftsync.AESGCMDecrypt(envelope, key)
	writeResponse(decryptOutput{OK: ok, Plaintext: driftsync.ToBase64URL(plaintext)})
}

func deriveKey() {
	var req struct {
		MasterSecret string   `json:"masterSecret"`
		Label        string   `json:"label"`
		Path         []string `json:"path"`
	}
	readRequest(&req)

	key, err := driftsync.DeriveKey(decodeField("masterSecret", req.MasterSecret), req.Label, req.Path)
	if err != nil {
		fatal("derive key: %v", err)
	}
	writeResponse(map[string]string{"key": driftsync.ToBase64URL(key)})
}

func encodeBackupKey() {
	var req struct {
		Key string `json:"key"`
	}
	readRequest(&req)

	backupKey, err := driftsync.EncodeBackupKey(decodeField("key", req.Key))
	if err != nil {
		fatal("encode backup key: %v", err)
	}
	writeResponse(map[string]string{"backupKey": backupKey})
}

func decodeBackupKey() {
	var req struct {
		BackupKey string `json:"backupKey"`
	}
	readRequest(&req)

	key, err := driftsync.DecodeBackupKey(req.BackupKey)
	if err != nil {
		writeResponse(map[string]interface{}{"ok": false, "error": err.Error()})
		return
	}
	writeResponse(map[string]interface{}{"ok": true, "key": driftsync.ToBase64URL(key)})
}

type keypairOutput struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

type envelopeOutput struct {
	Envelope string `json:"envelope"`
}

type decryptOutput struct {
	OK        bool   `json:"ok"`
	Plaintext string `json:"plaintext"`
}

// readSymmetricRequest handles the shared shape of the symmetric cipher
// commands: one payload field and one 32-byte key field.
func readSymmetricRequest() (payload, key []byte) {
	var req struct {
		Payload string `json:"payload"`
		Key     string `json:"key"`
	}
	readRequest(&req)

	key = decodeField("key", req.Key)
	if len(key) != driftsync.KeySize {
		fatal("key must be %d bytes", driftsync.KeySize)
	}
	return decodeField("payload", req.Payload), key
}

func readRequest(v interface{}) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		fatal("parse request: %v", err)
	}
}

func writeResponse(v interface{}) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode response: %v", err)
	}
}

func decodeField(name, value string) []byte {
	b, err := driftsync.FromBase64URL(value)
	if err != nil {
		fatal("decode %s: %v", name, err)
	}
	return b
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
