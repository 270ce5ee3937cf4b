package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hash of the input string as hex.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

func Verify(value, hash string) bool {
	return Hash(value) == hash
}

// SumBytes is the same function but takes []byte input.
func SumBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
