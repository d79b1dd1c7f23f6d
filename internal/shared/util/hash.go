package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashKey returns a stable hex identifier for s, case- and space-insensitive.
// Used to correlate recipients in logs without writing the address.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))
	return hex.EncodeToString(sum[:])
}
