package utils // package utils provides helpers for session identifiers and API token claims

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenClaims is returned when an API token cannot be decoded or lacks the
// claims a session needs.
var ErrTokenClaims = errors.New("invalid token claims")

// TokenClaims is what the front end needs to know about a bearer token issued
// by the booking API.
type TokenClaims struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

// DecodeClaims reads the username, role and exp claims of an API token. The
// signature is not checked: the token is only ever presented back to the API
// that issued it, which verifies it on every call.
func DecodeClaims(raw string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrTokenClaims, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return TokenClaims{}, fmt.Errorf("%w: missing exp", ErrTokenClaims)
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing role", ErrTokenClaims)
	}
	username, _ := claims["username"].(string)
	if username == "" {
		username, _ = claims["sub"].(string)
	}
	return TokenClaims{Username: username, Role: role, ExpiresAt: exp.Time.UTC()}, nil
}

// NewSessionID returns a cryptographically secure random session id (raw),
// suitable for a cookie value.
func NewSessionID() (string, error) {
	return randomHex(32)
}

// HashSessionID returns the SHA‑256 hex digest of a raw session id.  Only the
// digest is used as a storage key, so a leaked Redis dump cannot be replayed
// as cookies.
func HashSessionID(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex‑encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
