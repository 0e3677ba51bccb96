// Package signature verifies HMAC-SHA256 webhook signatures.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const prefix = "sha256="

// Verify reports whether signatureHeader matches the hex-encoded HMAC-SHA256
// of rawBody keyed by secret. The header may carry an optional "sha256="
// prefix. The digest comparison is constant-time.
func Verify(secret string, rawBody []byte, signatureHeader string) bool {
	provided := strings.TrimPrefix(strings.TrimSpace(signatureHeader), prefix)
	if secret == "" || provided == "" {
		return false
	}

	if !isHexDigest(provided) {
		return false
	}

	providedBytes, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	if len(expected) != len(providedBytes) {
		return false
	}

	return hmac.Equal(expected, providedBytes)
}

// isHexDigest checks for exactly 64 hex characters, case-insensitive.
func isHexDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
