//go:build unit

package signature_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"gembank/internal/pkg/signature"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"deposit.settled","amount":100}`)
	valid := sign(secret, body)

	tests := []struct {
		name   string
		secret string
		body   []byte
		header string
		want   bool
	}{
		{
			name:   "valid signature without prefix",
			secret: secret,
			body:   body,
			header: valid,
			want:   true,
		},
		{
			name:   "valid signature with sha256 prefix",
			secret: secret,
			body:   body,
			header: "sha256=" + valid,
			want:   true,
		},
		{
			name:   "valid signature with surrounding whitespace",
			secret: secret,
			body:   body,
			header: "  sha256=" + valid + " ",
			want:   true,
		},
		{
			name:   "uppercase hex accepted",
			secret: secret,
			body:   body,
			header: strings.ToUpper(valid),
			want:   true,
		},
		{
			name:   "single flipped hex character",
			secret: secret,
			body:   body,
			header: flipLastHexChar(valid),
			want:   false,
		},
		{
			name:   "signature of different body",
			secret: secret,
			body:   body,
			header: sign(secret, []byte(`{"event":"other"}`)),
			want:   false,
		},
		{
			name:   "signature keyed by different secret",
			secret: secret,
			body:   body,
			header: sign("other-secret", body),
			want:   false,
		},
		{
			name:   "empty secret",
			secret: "",
			body:   body,
			header: valid,
			want:   false,
		},
		{
			name:   "empty header",
			secret: secret,
			body:   body,
			header: "",
			want:   false,
		},
		{
			name:   "prefix only",
			secret: secret,
			body:   body,
			header: "sha256=",
			want:   false,
		},
		{
			name:   "truncated digest",
			secret: secret,
			body:   body,
			header: valid[:40],
			want:   false,
		},
		{
			name:   "overlong digest",
			secret: secret,
			body:   body,
			header: valid + "00",
			want:   false,
		},
		{
			name:   "non-hex characters of digest length",
			secret: secret,
			body:   body,
			header: strings.Repeat("zz", 32),
			want:   false,
		},
		{
			name:   "empty body still verifiable",
			secret: secret,
			body:   []byte{},
			header: sign(secret, []byte{}),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signature.Verify(tt.secret, tt.body, tt.header)
			assert.Equal(t, tt.want, got)
		})
	}
}

func flipLastHexChar(s string) string {
	last := s[len(s)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	return s[:len(s)-1] + string(replacement)
}
