// Package token issues and verifies the signed bearer tokens that carry a
// user identity between the client and the API. Tokens are HS256 JWTs with
// a 24 hour expiry; there is no refresh mechanism, an expired token simply
// fails verification and the user signs in again.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// trusted: malformed, bad signature, or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTTL matches the 24h validity the login flow promises.
const DefaultTTL = 24 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Manager signs and verifies tokens with a single shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing with secret. A non-positive ttl
// falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding userID, expiring ttl from now.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})
	return tok.SignedString(m.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded user ID. All failure modes collapse to ErrInvalidToken; the
// caller treats them identically.
func (m *Manager) Verify(tokenString string) (string, error) {
	c := &claims{}
	tok, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid || c.UserID == "" {
		return "", ErrInvalidToken
	}
	return c.UserID, nil
}
