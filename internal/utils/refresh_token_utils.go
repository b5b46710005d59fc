package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken generates the SHA-256 hash of a refresh token. The ledger
// stores only this hash; lookups hash the presented token and compare.
func HashRefreshToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
