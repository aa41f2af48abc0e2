package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// decodeClaims extracts the email and expiry claims from a bearer token
// without verifying the signature. Verification is the backend's job;
// the client only uses the claims for status display.
func decodeClaims(token string) (email string, expiresAt time.Time, ok bool) {
	if token == "" {
		return "", time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", time.Time{}, false
	}

	if v, ok := claims["email"].(string); ok {
		email = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return email, expiresAt, true
}

// Expired reports whether the credential carries an exp claim that has
// passed. An expired credential still counts as "set" for
// IsAuthenticated; the backend is the authority and will reject it.
func (s *Store) Expired() bool {
	_, expiresAt, ok := decodeClaims(s.token)
	if !ok || expiresAt.IsZero() {
		return false
	}
	return time.Now().After(expiresAt)
}
