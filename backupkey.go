package driftsync

import (
	"fmt"
	"math/big"
	"strings"
)

// backupKeyAlphabet is the restricted base-32 alphabet used for backup
// keys. I, L, O, and U are excluded: the first three are visually
// confusable with 1 and 0, and U invites accidental profanity when read
// aloud.
const backupKeyAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	// BackupKeySymbols is the number of meaningful base-32 symbols in an
	// encoded backup key: ceil(256/5).
	BackupKeySymbols = 52

	// backupKeyGroupSize is the number of symbols between separators.
	backupKeyGroupSize = 4
)

// backupKeyValues maps an ASCII byte to its alphabet index, or -1.
var backupKeyValues [256]int8

func init() {
	for i := range backupKeyValues {
		backupKeyValues[i] = -1
	}
	for i := 0; i < len(backupKeyAlphabet); i++ {
		backupKeyValues[backupKeyAlphabet[i]] = int8(i)
	}
}

// FormatError describes why a backup key string failed to decode. Check
// names the validation that failed ("length", "alphabet", or "range").
type FormatError struct {
	Check  string
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid backup key (%s check failed): %s", e.Check, e.Detail)
}

// EncodeBackupKey renders a 32-byte secret as a human-typable string: a pure
// radix-32 conversion of the 256-bit value into the restricted alphabet,
// always exactly 52 symbols, emitted as 13 dash-separated groups of 4.
//
// DecodeBackupKey(EncodeBackupKey(key)) returns key for every possible
// 32-byte key.
func EncodeBackupKey(key []byte) (string, error) {
	if len(key) != MasterSecretSize {
		return "", fmt.Errorf("%w: got %d, want %d", ErrInvalidMasterSecretSize, len(key), MasterSecretSize)
	}

	digits := make([]byte, BackupKeySymbols)
	n := new(big.Int).SetBytes(key)
	base := big.NewInt(int64(len(backupKeyAlphabet)))
	rem := new(big.Int)
	for i := BackupKeySymbols - 1; i >= 0; i-- {
		n.QuoRem(n, base, rem)
		digits[i] = backupKeyAlphabet[rem.Int64()]
	}

	var b strings.Builder
	b.Grow(BackupKeySymbols + BackupKeySymbols/backupKeyGroupSize)
	for i, d := range digits {
		if i > 0 && i%backupKeyGroupSize == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(d)
	}
	return b.String(), nil
}

// DecodeBackupKey parses a backup key string back into the 32-byte secret.
// Input is normalized first: separators and whitespace stripped, case
// folded to upper, and the known confusable substitutions mapped (O to 0,
// I and L to 1), so typed and transcribed keys survive the usual mistakes.
//
// Malformed input returns a *FormatError naming the check that failed;
// it never panics.
func DecodeBackupKey(s string) ([]byte, error) {
	normalized := normalizeBackupKey(s)

	if len(normalized) != BackupKeySymbols {
		return nil, &FormatError{
			Check:  "length",
			Detail: fmt.Sprintf("expected %d symbols after removing separators, got %d", BackupKeySymbols, len(normalized)),
		}
	}

	n := new(big.Int)
	base := big.NewInt(int64(len(backupKeyAlphabet)))
	digit := new(big.Int)
	for i := 0; i < len(normalized); i++ {
		v := backupKeyValues[normalized[i]]
		if v < 0 {
			return nil, &FormatError{
				Check:  "alphabet",
				Detail: fmt.Sprintf("symbol %q at position %d is not in the backup key alphabet", normalized[i], i),
			}
		}
		n.Mul(n, base)
		n.Add(n, digit.SetInt64(int64(v)))
	}

	// 52 symbols can hold 260 bits; reject the values beyond 2^256-1 so
	// every decodable string maps to exactly one 32-byte key.
	if n.BitLen() > 8*MasterSecretSize {
		return nil, &FormatError{
			Check:  "range",
			Detail: "encoded value does not fit in 256 bits",
		}
	}

	key := make([]byte, MasterSecretSize)
	n.FillBytes(key)
	return key, nil
}

// IsValidBackupKey reports whether s decodes to a backup key. It never
// panics, regardless of input.
func IsValidBackupKey(s string) bool {
	_, err := DecodeBackupKey(s)
	return err == nil
}

// normalizeBackupKey strips separators, folds case, and maps the confusable
// substitutions users make when transcribing a key by hand.
func normalizeBackupKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		switch r {
		case '-', ' ', '\t', '\r', '\n':
			// separators
		case 'O':
			b.WriteByte('0')
		case 'I', 'L':
			b.WriteByte('1')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
