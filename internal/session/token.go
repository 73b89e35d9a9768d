package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// Signer issues and verifies session tokens. The cookie value is
// "token.signature" where the signature is an HMAC-SHA256 of the token
// under the configured secret, so a client cannot forge another session's
// token.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Issue mints a fresh token and its signed cookie value.
func (s *Signer) Issue() (token, cookie string) {
	token = uuid.New().String()
	return token, token + "." + s.sign(token)
}

// Verify validates a cookie value and returns the embedded token.
func (s *Signer) Verify(cookie string) (string, bool) {
	token, sig, ok := strings.Cut(cookie, ".")
	if !ok || token == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(s.sign(token))) != 1 {
		return "", false
	}
	return token, true
}

func (s *Signer) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
